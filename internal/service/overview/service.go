package overview

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/absence"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/employee"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/overview"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/policy"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/holiday"
)

type OverviewServiceImpl struct {
	userRepo      user.UserRepository
	employeeRepo  employee.EmployeeRepository
	policyRepo    policy.ServerPolicyRepository
	timeEntryRepo timeentry.TimeEntryRepository
	absenceRepo   absence.AbsenceEntryRepository

	calendarFor   func(region string) holiday.Calendar
	loc           *time.Location
	defaultRegion string
	now           func() time.Time
}

func NewOverviewService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo policy.ServerPolicyRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	absenceRepo absence.AbsenceEntryRepository,
	loc *time.Location,
	defaultRegion string,
) overview.OverviewService {
	return &OverviewServiceImpl{
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		policyRepo:    policyRepo,
		timeEntryRepo: timeEntryRepo,
		absenceRepo:   absenceRepo,
		calendarFor:   holiday.ForRegion,
		loc:           loc,
		defaultRegion: defaultRegion,
		now:           time.Now,
	}
}

// CalculateOverview implements overview.OverviewService.
//
// The calculation is a pure function of the fetched inputs: validate
// the range, load everything up front, reconstruct each day in order,
// then resolve rest-period violations in a second pass over the
// assembled records.
func (s *OverviewServiceImpl) CalculateOverview(ctx context.Context, req overview.OverviewRequest) ([]overview.DayRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.DateStart, s.loc)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", req.DateEnd, s.loc)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}
	if start.After(end) {
		return nil, overview.ErrInvertedRange
	}

	inputs, err := s.loadInputs(ctx, req.UserID, start, end)
	if err != nil {
		return nil, err
	}

	if !inputs.policy.Valid() {
		return nil, policy.ErrPolicyMisconfigured
	}

	// Profile region, then the server policy's default, then the
	// configured fallback.
	region := inputs.employee.Region
	if region == "" {
		region = inputs.policy.DefaultRegion
	}
	if region == "" {
		region = s.defaultRegion
	}
	cal := s.calendarFor(region)

	underage := isUnderage(inputs.employee.Birthday, s.now())
	expectedPauseHours := float64(inputs.employee.PauseTimeMinutes) / 60.0

	var records []overview.DayRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		records = append(records, s.buildDayRecord(day, inputs, cal, underage, expectedPauseHours))
	}

	// Rest-period needs the neighbouring day, so it runs over the
	// assembled records. The first day has no predecessor in range and
	// stays false.
	for i := 1; i < len(records); i++ {
		prevEnd := records[i-1].EndWorkTime
		begin := records[i].BeginWorkTime
		if prevEnd != nil && begin != nil {
			records[i].ViolatesRestPeriod = violatesRestPeriod(*prevEnd, *begin)
		}
	}

	return records, nil
}

type overviewInputs struct {
	user      user.User
	employee  employee.Employee
	policy    policy.ServerPolicy
	entries   []timeentry.TimeEntry
	absences  []absence.AbsenceEntry
	rangeFrom time.Time
	rangeTo   time.Time
}

// loadInputs fetches all collaborator data concurrently and waits for
// the whole fan-out before any computation starts. A single failure
// abandons the request.
func (s *OverviewServiceImpl) loadInputs(ctx context.Context, userID string, start, end time.Time) (overviewInputs, error) {
	inputs := overviewInputs{rangeFrom: start, rangeTo: end}
	entriesUntil := end.AddDate(0, 0, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.userRepo.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		inputs.user = u
		return nil
	})

	g.Go(func() error {
		e, err := s.employeeRepo.GetByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("load employee profile: %w", err)
		}
		inputs.employee = e
		return nil
	})

	g.Go(func() error {
		p, err := s.policyRepo.Get(gctx)
		if err != nil {
			return fmt.Errorf("load server policy: %w", err)
		}
		inputs.policy = p
		return nil
	})

	g.Go(func() error {
		entries, err := s.timeEntryRepo.ListByUserAndRange(gctx, userID, start, entriesUntil)
		if err != nil {
			return fmt.Errorf("load time entries: %w", err)
		}
		inputs.entries = entries
		return nil
	})

	g.Go(func() error {
		absences, err := s.absenceRepo.ListByUserAndRange(gctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("load absence entries: %w", err)
		}
		inputs.absences = absences
		return nil
	})

	if err := g.Wait(); err != nil {
		return overviewInputs{}, err
	}
	return inputs, nil
}

func (s *OverviewServiceImpl) buildDayRecord(day time.Time, inputs overviewInputs, cal holiday.Calendar, underage bool, expectedPauseHours float64) overview.DayRecord {
	dayEntries := s.entriesForDay(inputs.entries, day)
	session := reconstructDaySession(dayEntries)

	record := overview.DayRecord{
		Date:                     day.Format("2006-01-02"),
		TotalHours:               session.TotalHours,
		TimeEntries:              make([]timeentry.TimeEntryResponse, 0, len(dayEntries)),
		TimeEntriesIssueDetected: session.DetectedIssue,
		IsWorkday:                cal.IsWorkday(day),
		IsHoliday:                cal.IsHoliday(day),
		BeginWorkTime:            session.BeginWorkTime,
		EndWorkTime:              session.EndWorkTime,
	}

	for _, e := range dayEntries {
		record.TimeEntries = append(record.TimeEntries, timeentry.ToTimeEntryResponse(e))
	}

	// An empty day keeps work and pause at zero rather than reporting
	// the contracted pause for time nobody worked.
	if session.TotalHours > 0 {
		br := applyBreakPolicy(session.TotalHours, expectedPauseHours)
		record.WorkTime = br.Work
		record.PauseTime = br.Pause
		record.ViolatesWorkTimeLimit = br.Violates
	}

	dayAbsences := make([]absence.AbsenceEntry, 0)
	for _, a := range inputs.absences {
		if a.Covers(day) {
			dayAbsences = append(dayAbsences, a)
		}
	}
	absence.SortByPriority(dayAbsences)
	record.AbsenceEntries = make([]absence.AbsenceEntryResponse, 0, len(dayAbsences))
	for _, a := range dayAbsences {
		record.AbsenceEntries = append(record.AbsenceEntries, absence.ToAbsenceEntryResponse(a))
	}
	if len(dayAbsences) > 0 {
		t := dayAbsences[0].EntryType
		record.AbsenceType = &t
	}

	record.ViolatesWorkHours = !withinWorkHourWindow(session.BeginWorkTime, session.EndWorkTime, underage)

	return record
}

// entriesForDay selects entries falling on the given calendar day in
// the service's location.
func (s *OverviewServiceImpl) entriesForDay(entries []timeentry.TimeEntry, day time.Time) []timeentry.TimeEntry {
	result := make([]timeentry.TimeEntry, 0)
	for _, e := range entries {
		local := e.DateTime.In(s.loc)
		if local.Year() == day.Year() && local.Month() == day.Month() && local.Day() == day.Day() {
			e.DateTime = local
			result = append(result, e)
		}
	}
	return result
}
