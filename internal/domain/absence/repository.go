package absence

import (
	"context"
	"time"
)

type AbsenceEntryRepository interface {
	// Create inserts a new absence entry
	Create(ctx context.Context, entry AbsenceEntry) (AbsenceEntry, error)

	// GetByID retrieves a single entry
	GetByID(ctx context.Context, id int64) (AbsenceEntry, error)

	// ListByUserAndRange retrieves all entries for a user whose
	// inclusive date range overlaps [from, to]
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]AbsenceEntry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id int64) error
}
