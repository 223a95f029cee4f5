package employee

import (
	"fmt"
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	Birthday         *string `json:"birthday,omitempty"`
	HourModel        *int    `json:"hour_model,omitempty"`
	PauseTimeMinutes *int    `json:"pause_time_minutes,omitempty"`
	Region           *string `json:"region,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Birthday != nil {
		if _, ok := validator.IsValidDate(*r.Birthday); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birthday",
				Message: "birthday must be in YYYY-MM-DD format",
			})
		}
	}

	if r.HourModel != nil {
		valid := false
		for _, m := range ValidHourModels {
			if *r.HourModel == m {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hour_model",
				Message: fmt.Sprintf("hour_model must be one of %v", ValidHourModels),
			})
		}
	}

	if r.PauseTimeMinutes != nil && (*r.PauseTimeMinutes < 0 || *r.PauseTimeMinutes > 240) {
		errs = append(errs, validator.ValidationError{
			Field:   "pause_time_minutes",
			Message: "pause_time_minutes must be between 0 and 240",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeUpdate is a sparse patch: only non-nil fields are written.
type EmployeeUpdate struct {
	Birthday         *time.Time
	HourModel        *int
	PauseTimeMinutes *int
	Region           *string
}

func (u EmployeeUpdate) IsEmpty() bool {
	return u.Birthday == nil && u.HourModel == nil && u.PauseTimeMinutes == nil && u.Region == nil
}

type ProfileResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	Birthday         string `json:"birthday"`
	HourModel        int    `json:"hour_model"`
	PauseTimeMinutes int    `json:"pause_time_minutes"`
	Region           string `json:"region"`
}

func ToProfileResponse(e Employee) ProfileResponse {
	return ProfileResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		Birthday:         e.Birthday.Format("2006-01-02"),
		HourModel:        e.HourModel,
		PauseTimeMinutes: e.PauseTimeMinutes,
		Region:           e.Region,
	}
}
