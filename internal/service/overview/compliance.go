package overview

import "time"

const (
	workWindowStartHour    = 6.0
	workWindowEndHourAdult = 22.0
	workWindowEndHourMinor = 20.0
	minRestPeriodHours     = 10.0
	adultAgeYears          = 18
)

// hourOfDay returns the fractional hour of day of t in its location,
// e.g. 21:45 -> 21.75.
func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// withinWorkHourWindow reports whether both session boundaries (where
// present) fall inside the allowed time-of-day window. Minors get the
// stricter window. A missing boundary is treated as compliant.
func withinWorkHourWindow(begin, end *time.Time, underage bool) bool {
	endHour := workWindowEndHourAdult
	if underage {
		endHour = workWindowEndHourMinor
	}

	for _, t := range []*time.Time{begin, end} {
		if t == nil {
			continue
		}
		h := hourOfDay(*t)
		if h < workWindowStartHour || h >= endHour {
			return false
		}
	}
	return true
}

// violatesRestPeriod reports whether the gap between the previous day's
// last departure and the current day's first arrival is shorter than
// the required rest period.
func violatesRestPeriod(previousEnd, currentBegin time.Time) bool {
	return hourOfDay(currentBegin)+24-hourOfDay(previousEnd) < minRestPeriodHours
}

// ageInYears computes whole calendar years between birthday and asOf.
func ageInYears(birthday, asOf time.Time) int {
	years := asOf.Year() - birthday.Year()
	if asOf.Month() < birthday.Month() ||
		(asOf.Month() == birthday.Month() && asOf.Day() < birthday.Day()) {
		years--
	}
	return years
}

func isUnderage(birthday, asOf time.Time) bool {
	return ageInYears(birthday, asOf) < adultAgeYears
}
