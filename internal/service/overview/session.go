package overview

import (
	"sort"
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
)

// daySession is the reconstruction of one calendar day from raw punch
// events. Malformed sequences never fail; they surface as DetectedIssue
// next to a best-effort total.
type daySession struct {
	TotalHours    float64
	DetectedIssue bool
	BeginWorkTime *time.Time
	EndWorkTime   *time.Time
}

// reconstructDaySession pairs arrivals with departures chronologically.
// A second arrival without an intervening departure overwrites the open
// one (last arrival wins); a departure without an open arrival adds no
// time. Both cases, and a day ending with an open arrival, flag an issue.
func reconstructDaySession(entries []timeentry.TimeEntry) daySession {
	sorted := make([]timeentry.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DateTime.Before(sorted[j].DateTime)
	})

	var session daySession
	var openArrival *time.Time

	for _, entry := range sorted {
		t := entry.DateTime

		switch entry.EntryType {
		case timeentry.EntryArrival:
			if session.BeginWorkTime == nil {
				session.BeginWorkTime = &t
			}
			if openArrival != nil {
				session.DetectedIssue = true
			}
			openArrival = &t

		case timeentry.EntryDeparture:
			session.EndWorkTime = &t
			if openArrival != nil {
				session.TotalHours += t.Sub(*openArrival).Hours()
				openArrival = nil
			} else {
				session.DetectedIssue = true
			}
		}
	}

	if openArrival != nil {
		session.DetectedIssue = true
	}

	return session
}
