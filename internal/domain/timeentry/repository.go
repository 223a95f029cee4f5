package timeentry

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	// Create inserts a new punch event
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetByID retrieves a single entry
	GetByID(ctx context.Context, id int64) (TimeEntry, error)

	// ListByUserAndRange retrieves all entries for a user whose
	// timestamp falls within [from, to)
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id int64) error
}
