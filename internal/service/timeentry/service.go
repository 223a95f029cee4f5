package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
)

type TimeEntryServiceImpl struct {
	timeEntryRepo timeentry.TimeEntryRepository
	userRepo      user.UserRepository
	loc           *time.Location
}

func NewTimeEntryService(timeEntryRepo timeentry.TimeEntryRepository, userRepo user.UserRepository, loc *time.Location) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		timeEntryRepo: timeEntryRepo,
		userRepo:      userRepo,
		loc:           loc,
	}
}

// CreateEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) CreateEntry(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if req.UserID != req.ActorID {
		if err := s.requireSuperuser(ctx, req.ActorID, req.Force); err != nil {
			return timeentry.TimeEntryResponse{}, err
		}
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("parse date_time: %w", err)
	}

	entry := timeentry.TimeEntry{
		UserID:    req.UserID,
		DateTime:  dateTime.In(s.loc),
		EntryType: timeentry.EntryType(req.EntryType),
		CreatedBy: req.ActorID,
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("create time entry: %w", err)
	}

	return timeentry.ToTimeEntryResponse(created), nil
}

// DeleteEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) DeleteEntry(ctx context.Context, id int64, actorID string, force bool) error {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entry.UserID != actorID {
		if err := s.requireSuperuser(ctx, actorID, force); err != nil {
			return err
		}
	}

	if err := s.timeEntryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// ListForDay implements timeentry.TimeEntryService.
//
// Creator accounts are resolved through a memoization map scoped to
// this call, so each distinct creator costs at most one lookup. The
// map is discarded with the call.
func (s *TimeEntryServiceImpl) ListForDay(ctx context.Context, userID string, day time.Time) ([]timeentry.TimeEntryWithCreator, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	entries, err := s.timeEntryRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	creators := make(map[string]*user.UserInfo)
	result := make([]timeentry.TimeEntryWithCreator, 0, len(entries))

	for _, entry := range entries {
		creator, seen := creators[entry.CreatedBy]
		if !seen {
			u, err := s.userRepo.GetByID(ctx, entry.CreatedBy)
			if err == nil {
				info := user.ToUserInfo(u)
				creator = &info
			}
			// A deleted creator resolves to nil; the entry still lists.
			creators[entry.CreatedBy] = creator
		}

		result = append(result, timeentry.TimeEntryWithCreator{
			TimeEntry: timeentry.ToTimeEntryResponse(entry),
			CreatedBy: creator,
		})
	}

	return result, nil
}

func (s *TimeEntryServiceImpl) requireSuperuser(ctx context.Context, actorID string, force bool) error {
	if !force {
		return timeentry.ErrForbiddenForOther
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("load acting user: %w", err)
	}
	if !actor.IsSuperuser {
		return timeentry.ErrForbiddenForOther
	}
	return nil
}
