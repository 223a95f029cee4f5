package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/absence"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
)

type absenceEntryRepository struct {
	db *database.DB
}

func NewAbsenceEntryRepository(db *database.DB) absence.AbsenceEntryRepository {
	return &absenceEntryRepository{db: db}
}

// Create implements absence.AbsenceEntryRepository.
func (r *absenceEntryRepository) Create(ctx context.Context, entry absence.AbsenceEntry) (absence.AbsenceEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_entries (user_id, date_begin, date_end, entry_type, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.DateBegin,
		entry.DateEnd,
		entry.EntryType,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return absence.AbsenceEntry{}, fmt.Errorf("failed to create absence entry: %w", err)
	}

	return entry, nil
}

// GetByID implements absence.AbsenceEntryRepository.
func (r *absenceEntryRepository) GetByID(ctx context.Context, id int64) (absence.AbsenceEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_begin, date_end, entry_type, created_by, created_at
		FROM absence_entries
		WHERE id = $1
	`

	var e absence.AbsenceEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.DateBegin, &e.DateEnd, &e.EntryType, &e.CreatedBy, &e.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceEntry{}, absence.ErrEntryNotFound
		}
		return absence.AbsenceEntry{}, fmt.Errorf("failed to get absence entry: %w", err)
	}

	return e, nil
}

// ListByUserAndRange implements absence.AbsenceEntryRepository. An
// entry is included when its inclusive range overlaps [from, to].
func (r *absenceEntryRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]absence.AbsenceEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_begin, date_end, entry_type, created_by, created_at
		FROM absence_entries
		WHERE user_id = $1
		  AND date_begin <= $3
		  AND date_end >= $2
		ORDER BY date_begin
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence entries: %w", err)
	}
	defer rows.Close()

	entries := []absence.AbsenceEntry{}
	for rows.Next() {
		var e absence.AbsenceEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.DateBegin, &e.DateEnd, &e.EntryType, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan absence entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absence entries: %w", err)
	}

	return entries, nil
}

// Delete implements absence.AbsenceEntryRepository.
func (r *absenceEntryRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absence_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrEntryNotFound
	}
	return nil
}
