package absence

import "errors"

var (
	ErrEntryNotFound     = errors.New("absence entry not found")
	ErrForbiddenForOther = errors.New("booking for another user requires superuser")
)
