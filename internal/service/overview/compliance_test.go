package overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) *time.Time {
	t := time.Date(2025, time.March, 3, hour, min, 0, 0, time.UTC)
	return &t
}

func TestHourOfDay(t *testing.T) {
	assert.InDelta(t, 21.5, hourOfDay(*at(21, 30)), 1e-9)
	assert.InDelta(t, 6.0, hourOfDay(*at(6, 0)), 1e-9)
	assert.InDelta(t, 23.75, hourOfDay(*at(23, 45)), 1e-9)
}

func TestWithinWorkHourWindow(t *testing.T) {
	tests := []struct {
		name     string
		begin    *time.Time
		end      *time.Time
		underage bool
		want     bool
	}{
		{name: "regular adult day", begin: at(8, 0), end: at(17, 0), want: true},
		{name: "starts exactly at six", begin: at(6, 0), end: at(14, 0), want: true},
		{name: "ends just before adult limit", begin: at(13, 0), end: at(21, 59), want: true},
		{name: "ends exactly at adult limit", begin: at(13, 0), end: at(22, 0), want: false},
		{name: "starts before six", begin: at(5, 45), end: at(14, 0), want: false},
		{name: "late evening end", begin: at(14, 0), end: at(23, 30), want: false},
		{name: "minor within window", begin: at(8, 0), end: at(19, 45), underage: true, want: true},
		{name: "minor past minor limit", begin: at(8, 0), end: at(20, 15), underage: true, want: false},
		{name: "adult fine where minor is not", begin: at(8, 0), end: at(20, 15), want: true},
		{name: "missing end boundary", begin: at(8, 0), want: true},
		{name: "no boundaries at all", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinWorkHourWindow(tt.begin, tt.end, tt.underage))
		})
	}
}

func TestWithinWorkHourWindow_UsesFullClockReading(t *testing.T) {
	// The fractional hour must include the hour component. Reading only
	// the minute fraction would put 08:30 at 0.5, below the window
	// start, and flag every ordinary workday.
	assert.InDelta(t, 8.5, hourOfDay(*at(8, 30)), 1e-9)
	assert.True(t, withinWorkHourWindow(at(8, 30), at(17, 0), false))

	// Conversely 21:30 reads as 21.5, not 0.5: inside the adult window
	// but past the minor limit.
	assert.InDelta(t, 21.5, hourOfDay(*at(21, 30)), 1e-9)
	assert.True(t, withinWorkHourWindow(at(13, 0), at(21, 30), false))
	assert.False(t, withinWorkHourWindow(at(13, 0), at(21, 30), true))
}

func TestViolatesRestPeriod(t *testing.T) {
	// 22:00 departure followed by a 07:00 arrival leaves nine hours.
	assert.True(t, violatesRestPeriod(*at(22, 0), *at(7, 0)))

	// 20:00 departure followed by a 07:00 arrival leaves eleven hours.
	assert.False(t, violatesRestPeriod(*at(20, 0), *at(7, 0)))

	// Exactly ten hours is enough rest.
	assert.False(t, violatesRestPeriod(*at(21, 0), *at(7, 0)))

	assert.True(t, violatesRestPeriod(*at(21, 30), *at(7, 0)))
}

func TestAgeInYears(t *testing.T) {
	birthday := time.Date(2008, time.March, 10, 0, 0, 0, 0, time.UTC)

	dayBefore := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	onBirthday := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 17, ageInYears(birthday, dayBefore))
	assert.Equal(t, 18, ageInYears(birthday, onBirthday))

	assert.True(t, isUnderage(birthday, dayBefore))
	assert.False(t, isUnderage(birthday, onBirthday))
}
