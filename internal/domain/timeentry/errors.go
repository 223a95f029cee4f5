package timeentry

import "errors"

var (
	ErrEntryNotFound     = errors.New("time entry not found")
	ErrForbiddenForOther = errors.New("booking for another user requires superuser")
)
