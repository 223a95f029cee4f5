package holiday

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNationwideHolidays(t *testing.T) {
	c := ForRegion("")

	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"new year", date(2025, time.January, 1), true},
		{"labour day", date(2025, time.May, 1), true},
		{"german unity day", date(2025, time.October, 3), true},
		{"easter monday 2025", date(2025, time.April, 21), true},
		{"regular tuesday", date(2025, time.July, 15), false},
	}
	for _, c2 := range cases {
		if got := c.IsHoliday(c2.day); got != c2.want {
			t.Errorf("%s: IsHoliday(%s) = %v, want %v", c2.name, c2.day.Format("2006-01-02"), got, c2.want)
		}
	}
}

func TestRegionalHolidays(t *testing.T) {
	epiphany := date(2025, time.January, 6)

	if !ForRegion("BY").IsHoliday(epiphany) {
		t.Error("epiphany should be a holiday in Bavaria")
	}
	if ForRegion("BE").IsHoliday(epiphany) {
		t.Error("epiphany should not be a holiday in Berlin")
	}
}

func TestIsWorkday(t *testing.T) {
	c := ForRegion("BW")

	if c.IsWorkday(date(2025, time.July, 12)) { // Saturday
		t.Error("saturday should not be a workday")
	}
	if c.IsWorkday(date(2025, time.October, 3)) { // Friday, unity day
		t.Error("a public holiday should not be a workday")
	}
	if !c.IsWorkday(date(2025, time.July, 15)) { // Tuesday
		t.Error("a regular tuesday should be a workday")
	}
}
