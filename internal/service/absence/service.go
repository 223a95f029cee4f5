package absence

import (
	"context"
	"fmt"
	"time"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/absence"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
)

type AbsenceEntryServiceImpl struct {
	absenceRepo absence.AbsenceEntryRepository
	userRepo    user.UserRepository
	loc         *time.Location
}

func NewAbsenceEntryService(absenceRepo absence.AbsenceEntryRepository, userRepo user.UserRepository, loc *time.Location) absence.AbsenceEntryService {
	return &AbsenceEntryServiceImpl{
		absenceRepo: absenceRepo,
		userRepo:    userRepo,
		loc:         loc,
	}
}

// CreateEntry implements absence.AbsenceEntryService.
func (s *AbsenceEntryServiceImpl) CreateEntry(ctx context.Context, req absence.CreateAbsenceEntryRequest) (absence.AbsenceEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceEntryResponse{}, err
	}

	if req.UserID != req.ActorID {
		if err := s.requireSuperuser(ctx, req.ActorID, req.Force); err != nil {
			return absence.AbsenceEntryResponse{}, err
		}
	}

	dateBegin, err := time.ParseInLocation("2006-01-02", req.DateBegin, s.loc)
	if err != nil {
		return absence.AbsenceEntryResponse{}, fmt.Errorf("parse date_begin: %w", err)
	}
	dateEnd, err := time.ParseInLocation("2006-01-02", req.DateEnd, s.loc)
	if err != nil {
		return absence.AbsenceEntryResponse{}, fmt.Errorf("parse date_end: %w", err)
	}

	entry := absence.AbsenceEntry{
		UserID:    req.UserID,
		DateBegin: dateBegin,
		DateEnd:   dateEnd,
		EntryType: absence.EntryType(req.EntryType),
		CreatedBy: req.ActorID,
	}

	created, err := s.absenceRepo.Create(ctx, entry)
	if err != nil {
		return absence.AbsenceEntryResponse{}, fmt.Errorf("create absence entry: %w", err)
	}

	return absence.ToAbsenceEntryResponse(created), nil
}

// DeleteEntry implements absence.AbsenceEntryService.
func (s *AbsenceEntryServiceImpl) DeleteEntry(ctx context.Context, id int64, actorID string, force bool) error {
	entry, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entry.UserID != actorID {
		if err := s.requireSuperuser(ctx, actorID, force); err != nil {
			return err
		}
	}

	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete absence entry: %w", err)
	}
	return nil
}

// ListForDay implements absence.AbsenceEntryService.
func (s *AbsenceEntryServiceImpl) ListForDay(ctx context.Context, userID string, day time.Time) ([]absence.AbsenceEntryResponse, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)

	entries, err := s.absenceRepo.ListByUserAndRange(ctx, userID, dayStart, dayStart)
	if err != nil {
		return nil, fmt.Errorf("list absence entries: %w", err)
	}

	covering := make([]absence.AbsenceEntry, 0, len(entries))
	for _, e := range entries {
		if e.Covers(dayStart) {
			covering = append(covering, e)
		}
	}
	absence.SortByPriority(covering)

	result := make([]absence.AbsenceEntryResponse, 0, len(covering))
	for _, e := range covering {
		result = append(result, absence.ToAbsenceEntryResponse(e))
	}
	return result, nil
}

func (s *AbsenceEntryServiceImpl) requireSuperuser(ctx context.Context, actorID string, force bool) error {
	if !force {
		return absence.ErrForbiddenForOther
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("load acting user: %w", err)
	}
	if !actor.IsSuperuser {
		return absence.ErrForbiddenForOther
	}
	return nil
}
