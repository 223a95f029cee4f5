package timeentry

import "time"

type EntryType string

const (
	EntryArrival   EntryType = "arrival"
	EntryDeparture EntryType = "departure"
)

// TimeEntry is an immutable punch event. Entries carry no ordering
// guarantee from storage; consumers sort by DateTime.
type TimeEntry struct {
	ID        int64
	UserID    string
	DateTime  time.Time
	EntryType EntryType
	CreatedBy string
	CreatedAt time.Time
}
