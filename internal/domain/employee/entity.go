package employee

import "time"

// Employee is the time-tracking profile attached to a user account.
// HourModel is the contracted daily hours, PauseTimeMinutes the
// contracted break per day.
type Employee struct {
	ID               string
	UserID           string
	Birthday         time.Time
	HourModel        int
	PauseTimeMinutes int
	Region           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidHourModels are the contracted daily hour models on offer.
var ValidHourModels = []int{6, 7, 8}
