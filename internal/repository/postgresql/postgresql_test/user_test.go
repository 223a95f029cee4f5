package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
	"github.com/zeitgrid/worktime-backend-go/internal/repository/postgresql"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func truncateAll(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"time_entries", "absence_entries", "employees", "users"} {
		_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func seedUserWithData(t *testing.T, ctx context.Context, db *database.DB, id string) {
	t.Helper()
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO users (id, username, email, is_superuser, is_employee, created_at, updated_at)
		VALUES ($1, 'mmeier', 'mmeier@example.org', false, true, NOW(), NOW())
	`, id)
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO employees (id, user_id, birthday, hour_model, pause_time_minutes, region, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, '1990-06-15', 8, 30, 'BW', NOW(), NOW())
	`, id)
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO time_entries (user_id, date_time, entry_type, created_by, created_at)
		VALUES ($1, $2, 'arrival', $1, NOW())
	`, id, time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO absence_entries (user_id, date_begin, date_end, entry_type, created_by, created_at)
		VALUES ($1, '2025-03-10', '2025-03-12', 'vacation', $1, NOW())
	`, id)
	require.NoError(t, err)
}

func countRows(t *testing.T, ctx context.Context, db *database.DB, table, userColumn, id string) int {
	t.Helper()
	var n int
	err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+" WHERE "+userColumn+" = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	const id = "b3f1c2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	seedUserWithData(t, ctx, db, id)

	repo := postgresql.NewUserRepository(db)
	require.NoError(t, repo.Delete(ctx, id))

	assert.Zero(t, countRows(t, ctx, db, "users", "id", id))
	assert.Zero(t, countRows(t, ctx, db, "employees", "user_id", id))
	assert.Zero(t, countRows(t, ctx, db, "time_entries", "user_id", id))
	assert.Zero(t, countRows(t, ctx, db, "absence_entries", "user_id", id))
}

func TestUserRepository_DeleteUnknown(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	const id = "b3f1c2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	seedUserWithData(t, ctx, db, id)

	repo := postgresql.NewUserRepository(db)
	err := repo.Delete(ctx, "19f8e7d6-c5b4-4a39-8271-605f4e3d2c1b")
	require.ErrorIs(t, err, user.ErrUserNotFound)

	// The failed delete commits nothing; the existing account and its
	// data are untouched.
	assert.Equal(t, 1, countRows(t, ctx, db, "users", "id", id))
	assert.Equal(t, 1, countRows(t, ctx, db, "employees", "user_id", id))
	assert.Equal(t, 1, countRows(t, ctx, db, "time_entries", "user_id", id))
	assert.Equal(t, 1, countRows(t, ctx, db, "absence_entries", "user_id", id))
}
