package timeentry

import (
	"context"
	"time"
)

type TimeEntryService interface {
	// CreateEntry books a punch event
	CreateEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)

	// DeleteEntry removes a punch event; force allows deleting another
	// user's entry as superuser
	DeleteEntry(ctx context.Context, id int64, actorID string, force bool) error

	// ListForDay retrieves a user's entries for one calendar day with
	// the creating account resolved per entry
	ListForDay(ctx context.Context, userID string, day time.Time) ([]TimeEntryWithCreator, error)
}
