package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (user_id, date_time, entry_type, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.DateTime,
		entry.EntryType,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_time, entry_type, created_by, created_at
		FROM time_entries
		WHERE id = $1
	`

	var e timeentry.TimeEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.DateTime, &e.EntryType, &e.CreatedBy, &e.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

// ListByUserAndRange implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date_time, entry_type, created_by, created_at
		FROM time_entries
		WHERE user_id = $1
		  AND date_time >= $2
		  AND date_time < $3
		ORDER BY date_time
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := []timeentry.TimeEntry{}
	for rows.Next() {
		var e timeentry.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.DateTime, &e.EntryType, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}
	return nil
}
