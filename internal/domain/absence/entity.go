package absence

import "time"

type EntryType string

const (
	EntrySickness EntryType = "sickness"
	EntryOther    EntryType = "other"
	EntryVacation EntryType = "vacation"
)

// Priority orders absence types for display: sickness first.
func (t EntryType) Priority() int {
	switch t {
	case EntrySickness:
		return 0
	case EntryOther:
		return 1
	case EntryVacation:
		return 2
	}
	return 3
}

// AbsenceEntry is an immutable absence fact over an inclusive
// calendar-date range. Ranges of different entries may overlap.
type AbsenceEntry struct {
	ID        int64
	UserID    string
	DateBegin time.Time
	DateEnd   time.Time
	EntryType EntryType
	CreatedBy string
	CreatedAt time.Time
}

// Covers reports whether day falls inside the entry's inclusive range.
// Only the calendar date components are compared, so the range and the
// day may carry different locations.
func (a AbsenceEntry) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(a.DateBegin)) && !d.After(dateOnly(a.DateEnd))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
