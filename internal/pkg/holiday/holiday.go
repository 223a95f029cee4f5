package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// Calendar answers public-holiday and workday questions for one region.
type Calendar interface {
	IsHoliday(date time.Time) bool
	IsWorkday(date time.Time) bool
}

// regional holidays on top of the nationwide set, keyed by the
// ISO 3166-2:DE state code without the "DE-" prefix
var regionalHolidays = map[string][]*cal.Holiday{
	"BW": {de.HeiligeDreiKoenige, de.Fronleichnam, de.Allerheiligen},
	"BY": {de.HeiligeDreiKoenige, de.Fronleichnam, de.MariaHimmelfahrt, de.Allerheiligen},
	"BE": {de.Frauentag},
	"BB": {de.Reformationstag},
	"HB": {de.Reformationstag},
	"HH": {de.Reformationstag},
	"HE": {de.Fronleichnam},
	"MV": {de.Frauentag, de.Reformationstag},
	"NI": {de.Reformationstag},
	"NW": {de.Fronleichnam, de.Allerheiligen},
	"RP": {de.Fronleichnam, de.Allerheiligen},
	"SL": {de.Fronleichnam, de.MariaHimmelfahrt, de.Allerheiligen},
	"SN": {de.Reformationstag, de.BussUndBettag},
	"ST": {de.HeiligeDreiKoenige, de.Reformationstag},
	"SH": {de.Reformationstag},
	"TH": {de.Weltkindertag, de.Reformationstag},
}

type calendar struct {
	cal *cal.BusinessCalendar
}

// ForRegion builds a calendar for a German state code ("BW", "BY", ...).
// Unknown or empty regions fall back to the nationwide holiday set.
func ForRegion(region string) Calendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(de.Holidays...)
	if extra, ok := regionalHolidays[region]; ok {
		c.AddHoliday(extra...)
	}
	return &calendar{cal: c}
}

func (c *calendar) IsHoliday(date time.Time) bool {
	actual, observed, _ := c.cal.IsHoliday(date)
	return actual || observed
}

func (c *calendar) IsWorkday(date time.Time) bool {
	return c.cal.IsWorkday(date)
}
