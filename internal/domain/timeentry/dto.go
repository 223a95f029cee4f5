package timeentry

import (
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type CreateTimeEntryRequest struct {
	UserID    string `json:"user_id"`
	DateTime  string `json:"date_time"`
	EntryType string `json:"entry_type"`

	// Force books for another user; requires superuser.
	Force bool `json:"-"`
	// ActorID is the authenticated user, filled from the token.
	ActorID string `json:"-"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDateTime(r.DateTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_time",
			Message: "date_time must be an ISO8601 timestamp",
		})
	}

	if !validator.IsInSlice(r.EntryType, []string{string(EntryArrival), string(EntryDeparture)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_type",
			Message: "entry_type must be arrival or departure",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	DateTime  time.Time `json:"date_time"`
	EntryType EntryType `json:"entry_type"`
	CreatedBy string    `json:"created_by"`
}

// TimeEntryWithCreator pairs an entry with the resolved creator account,
// mirroring what the booking UI shows next to each punch.
type TimeEntryWithCreator struct {
	TimeEntry TimeEntryResponse `json:"time_entry"`
	CreatedBy *user.UserInfo    `json:"created_by,omitempty"`
}

func ToTimeEntryResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		DateTime:  e.DateTime,
		EntryType: e.EntryType,
		CreatedBy: e.CreatedBy,
	}
}
