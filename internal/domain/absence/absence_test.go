package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCovers(t *testing.T) {
	entry := AbsenceEntry{
		DateBegin: date(2025, time.March, 3),
		DateEnd:   date(2025, time.March, 5),
	}

	assert.False(t, entry.Covers(date(2025, time.March, 2)))
	assert.True(t, entry.Covers(date(2025, time.March, 3)))
	assert.True(t, entry.Covers(date(2025, time.March, 4)))
	assert.True(t, entry.Covers(date(2025, time.March, 5)))
	assert.False(t, entry.Covers(date(2025, time.March, 6)))
}

func TestCovers_IgnoresClockAndLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	entry := AbsenceEntry{
		DateBegin: date(2025, time.March, 3),
		DateEnd:   date(2025, time.March, 3),
	}

	// Local midnight in Berlin is still the previous UTC evening; only
	// the calendar date counts.
	assert.True(t, entry.Covers(time.Date(2025, time.March, 3, 0, 0, 0, 0, berlin)))
	assert.False(t, entry.Covers(time.Date(2025, time.March, 4, 0, 0, 0, 0, berlin)))
}

func TestSortByPriority(t *testing.T) {
	entries := []AbsenceEntry{
		{ID: 1, EntryType: EntryVacation, DateBegin: date(2025, time.March, 1)},
		{ID: 2, EntryType: EntryOther, DateBegin: date(2025, time.March, 1)},
		{ID: 3, EntryType: EntrySickness, DateBegin: date(2025, time.March, 2)},
		{ID: 4, EntryType: EntrySickness, DateBegin: date(2025, time.March, 1)},
	}

	SortByPriority(entries)

	assert.Equal(t, int64(4), entries[0].ID, "earlier sickness entry first")
	assert.Equal(t, int64(3), entries[1].ID)
	assert.Equal(t, int64(2), entries[2].ID)
	assert.Equal(t, int64(1), entries[3].ID)
}

func TestCreateAbsenceEntryRequest_Validate(t *testing.T) {
	valid := CreateAbsenceEntryRequest{
		UserID:    "b3f1c2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		DateBegin: "2025-03-03",
		DateEnd:   "2025-03-05",
		EntryType: "vacation",
	}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.DateBegin = "2025-03-06"
	assert.Error(t, inverted.Validate())

	badType := valid
	badType.EntryType = "holiday"
	assert.Error(t, badType.Validate())

	badUser := valid
	badUser.UserID = "42"
	assert.Error(t, badUser.Validate())
}
