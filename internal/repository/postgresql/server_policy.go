package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/policy"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
)

type serverPolicyRepository struct {
	db *database.DB
}

func NewServerPolicyRepository(db *database.DB) policy.ServerPolicyRepository {
	return &serverPolicyRepository{db: db}
}

// Get implements policy.ServerPolicyRepository. The store holds a
// single row.
func (r *serverPolicyRepository) Get(ctx context.Context) (policy.ServerPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT overtime_warning_yellow_hours, overtime_warning_red_hours, default_region, updated_at
		FROM server_policy
		LIMIT 1
	`

	var p policy.ServerPolicy
	err := q.QueryRow(ctx, query).Scan(
		&p.OvertimeWarningYellowHours,
		&p.OvertimeWarningRedHours,
		&p.DefaultRegion,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.ServerPolicy{}, policy.ErrPolicyNotFound
		}
		return policy.ServerPolicy{}, fmt.Errorf("failed to get server policy: %w", err)
	}

	return p, nil
}
