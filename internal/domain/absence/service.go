package absence

import (
	"context"
	"time"
)

type AbsenceEntryService interface {
	// CreateEntry books an absence over an inclusive date range
	CreateEntry(ctx context.Context, req CreateAbsenceEntryRequest) (AbsenceEntryResponse, error)

	// DeleteEntry removes an absence entry; force allows deleting
	// another user's entry as superuser
	DeleteEntry(ctx context.Context, id int64, actorID string, force bool) error

	// ListForDay retrieves a user's absence entries covering one
	// calendar day, sorted by display priority
	ListForDay(ctx context.Context, userID string, day time.Time) ([]AbsenceEntryResponse, error)
}
