package overview

import "context"

// OverviewService reconstructs a user's work days over a date range.
type OverviewService interface {
	// CalculateOverview returns exactly one DayRecord per calendar day
	// in [start, end], ascending
	CalculateOverview(ctx context.Context, req OverviewRequest) ([]DayRecord, error)
}
