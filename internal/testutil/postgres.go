// Package testutil starts throwaway PostgreSQL instances for integration tests.
package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"hostel-mess/internal/database"
)

const postgresImage = "postgres:16-alpine"

// Postgres starts a migrated database and returns a pool plus its DSN. The
// test is skipped in -short mode or when no container runtime is available.
func Postgres(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("hostel_mess_test"),
		postgres.WithUsername("mess"),
		postgres.WithPassword("mess"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool, dsn
}

// Reset empties every table and restarts id sequences.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE menu_items, meals, notices, feedback RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// InsertMeal adds a meal with the given items and returns its id.
func InsertMeal(t *testing.T, pool *pgxpool.Pool, day, mealType, timeSlot string, items ...string) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO meals (day_of_week, meal_type, time_slot)
		VALUES ($1, $2, $3)
		RETURNING id
	`, day, mealType, timeSlot).Scan(&id)
	require.NoError(t, err)

	for _, item := range items {
		_, err := pool.Exec(ctx, `INSERT INTO menu_items (meal_id, item_name) VALUES ($1, $2)`, id, item)
		require.NoError(t, err)
	}
	return id
}
