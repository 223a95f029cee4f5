package absence

import (
	"sort"

	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type CreateAbsenceEntryRequest struct {
	UserID    string `json:"user_id"`
	DateBegin string `json:"date_begin"`
	DateEnd   string `json:"date_end"`
	EntryType string `json:"entry_type"`

	Force   bool   `json:"-"`
	ActorID string `json:"-"`
}

func (r *CreateAbsenceEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	begin, beginOK := validator.IsValidDate(r.DateBegin)
	if !beginOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_begin",
			Message: "date_begin must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.DateEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_end",
			Message: "date_end must be in YYYY-MM-DD format",
		})
	}

	if beginOK && endOK && end.Before(begin) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_end",
			Message: "date_end must not be before date_begin",
		})
	}

	if !validator.IsInSlice(r.EntryType, []string{string(EntrySickness), string(EntryOther), string(EntryVacation)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_type",
			Message: "entry_type must be sickness, other or vacation",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceEntryResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	DateBegin string    `json:"date_begin"`
	DateEnd   string    `json:"date_end"`
	EntryType EntryType `json:"entry_type"`
	CreatedBy string    `json:"created_by"`
}

func ToAbsenceEntryResponse(e AbsenceEntry) AbsenceEntryResponse {
	return AbsenceEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		DateBegin: e.DateBegin.Format("2006-01-02"),
		DateEnd:   e.DateEnd.Format("2006-01-02"),
		EntryType: e.EntryType,
		CreatedBy: e.CreatedBy,
	}
}

// SortByPriority orders entries sickness < other < vacation, ties by
// begin date ascending. The slice is sorted in place.
func SortByPriority(entries []AbsenceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := entries[i].EntryType.Priority(), entries[j].EntryType.Priority()
		if pi != pj {
			return pi < pj
		}
		return entries[i].DateBegin.Before(entries[j].DateBegin)
	})
}
