package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/charhp/internal/game/health"
	"github.com/cory-johannsen/charhp/internal/storage/postgres"
	"github.com/cory-johannsen/charhp/internal/testutil"
)

// TestHealthRepository runs every repository case against one container.
func TestHealthRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	ctx := context.Background()
	require.ErrorIs(t, pc.Pool.RequireSchema(ctx), postgres.ErrSchemaMissing)
	pc.ApplyMigrations(t)
	require.NoError(t, pc.Pool.RequireSchema(ctx))
	repo := postgres.NewHealthRepository(pc.RawPool)

	t.Run("SaveAndGet", func(t *testing.T) { testSaveAndGet(t, repo) })
	t.Run("SaveUpserts", func(t *testing.T) { testSaveUpserts(t, repo, pc) })
	t.Run("GetMissing", func(t *testing.T) { testGetMissing(t, repo) })
	t.Run("RejectsUnnamed", func(t *testing.T) { testRejectsUnnamed(t, repo) })
	t.Run("PoolHealth", func(t *testing.T) { assert.NoError(t, pc.Pool.Health(ctx, time.Second)) })
	t.Run("RoundTripProperty", func(t *testing.T) { testRoundTripProperty(t, repo) })
}

func testSaveAndGet(t *testing.T, repo *postgres.HealthRepository) {
	ctx := context.Background()

	rec := health.Record{Name: "Briv", MaxHP: 45, CurrentHP: 40, TempHP: 3}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetByName(ctx, "BRIV")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func testSaveUpserts(t *testing.T, repo *postgres.HealthRepository, pc *testutil.PostgresContainer) {
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, health.Record{Name: "Upsert", MaxHP: 20, CurrentHP: 20}))
	require.NoError(t, repo.Save(ctx, health.Record{Name: "upsert", MaxHP: 20, CurrentHP: 7, TempHP: 1}))

	got, err := repo.GetByName(ctx, "Upsert")
	require.NoError(t, err)
	assert.Equal(t, health.Record{Name: "upsert", MaxHP: 20, CurrentHP: 7, TempHP: 1}, got)

	var rows int
	require.NoError(t, pc.RawPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM character_health WHERE name_key = 'upsert'`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func testGetMissing(t *testing.T, repo *postgres.HealthRepository) {
	_, err := repo.GetByName(context.Background(), "nobody-here")
	assert.ErrorIs(t, err, health.ErrRecordNotFound)
}

func testRejectsUnnamed(t *testing.T, repo *postgres.HealthRepository) {
	err := repo.Save(context.Background(), health.Record{MaxHP: 5, CurrentHP: 5})
	assert.ErrorIs(t, err, health.ErrValidation)
}

func testRoundTripProperty(t *testing.T, repo *postgres.HealthRepository) {
	ctx := context.Background()
	i := 0
	rapid.Check(t, func(rt *rapid.T) {
		i++
		maxHP := rapid.IntRange(0, 1000).Draw(rt, "maxHP")
		rec := health.Record{
			Name:      fmt.Sprintf("Prop%d", i),
			MaxHP:     maxHP,
			CurrentHP: rapid.IntRange(0, maxHP).Draw(rt, "currentHP"),
			TempHP:    rapid.IntRange(0, 100).Draw(rt, "tempHP"),
		}
		require.NoError(rt, repo.Save(ctx, rec))
		got, err := repo.GetByName(ctx, rec.Name)
		require.NoError(rt, err)
		assert.Equal(rt, rec, got)
	})
}
