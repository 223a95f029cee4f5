package overview

import (
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/absence"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type OverviewRequest struct {
	UserID    string
	DateStart string
	DateEnd   string
}

// Validate checks field formats only. Range inversion is not a format
// problem; the service reports it as ErrInvertedRange.
func (r *OverviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.DateStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.DateEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayRecord is the per-calendar-day result of the overview
// calculation. It is derived on every request and never persisted.
type DayRecord struct {
	Date                     string                         `json:"date"`
	TotalHours               float64                        `json:"total_hours"`
	WorkTime                 float64                        `json:"work_time"`
	PauseTime                float64                        `json:"pause_time"`
	TimeEntries              []timeentry.TimeEntryResponse  `json:"time_entries"`
	TimeEntriesIssueDetected bool                           `json:"time_entries_issue_detected"`
	AbsenceEntries           []absence.AbsenceEntryResponse `json:"absence_entries"`
	AbsenceType              *absence.EntryType             `json:"absence_type,omitempty"`
	IsWorkday                bool                           `json:"is_workday"`
	IsHoliday                bool                           `json:"is_holiday"`
	BeginWorkTime            *time.Time                     `json:"begin_work_time,omitempty"`
	EndWorkTime              *time.Time                     `json:"end_work_time,omitempty"`
	ViolatesWorkTimeLimit    bool                           `json:"violates_work_time_limit"`
	ViolatesWorkHours        bool                           `json:"violates_work_hours"`
	ViolatesRestPeriod       bool                           `json:"violates_rest_period"`
}
