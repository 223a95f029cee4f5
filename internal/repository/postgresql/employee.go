package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/employee"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, birthday, hour_model, pause_time_minutes, region, created_at, updated_at
		FROM employees
		WHERE user_id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.Birthday, &e.HourModel, &e.PauseTimeMinutes, &e.Region,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// Update implements employee.EmployeeRepository. Only the fields present
// in the patch are written.
func (r *employeeRepository) Update(ctx context.Context, id string, update employee.EmployeeUpdate) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Birthday != nil {
		addSet("birthday", *update.Birthday)
	}
	if update.HourModel != nil {
		addSet("hour_model", *update.HourModel)
	}
	if update.PauseTimeMinutes != nil {
		addSet("pause_time_minutes", *update.PauseTimeMinutes)
	}
	if update.Region != nil {
		addSet("region", *update.Region)
	}

	if len(sets) == 0 {
		return employee.Employee{}, employee.ErrNoFieldsChanged
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d
		RETURNING id, user_id, birthday, hour_model, pause_time_minutes, region, created_at, updated_at
	`, strings.Join(sets, ", "), len(args))

	var e employee.Employee
	err := q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.UserID, &e.Birthday, &e.HourModel, &e.PauseTimeMinutes, &e.Region,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}
