package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/world"
)

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbPath := filepath.Join(t.TempDir(), "boards.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	repo := repository.NewBoardRepo(db)
	boards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 3)

	saturated, err := repo.GetByName(ctx, "saturated")
	require.NoError(t, err)
	require.NotNil(t, saturated)
	require.Equal(t, 10, saturated.GridSize)

	dirt, err := world.ParsePositions(saturated.Dirt)
	require.NoError(t, err)
	require.Len(t, dirt, 100)
}

func TestMigrationsPathOverride(t *testing.T) {
	t.Setenv("VACUUM_MIGRATIONS", "/srv/vacuumworld/migrations")
	require.Equal(t, "/srv/vacuumworld/migrations", MigrationsPath())

	t.Setenv("VACUUM_MIGRATIONS", "")
	require.Equal(t, "internal/database/migrations", MigrationsPath())
}

func TestRunMigrationsTwice(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "boards.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)

	require.NoError(t, RunMigrations(dbPath, migrations))
	require.NoError(t, RunMigrations(dbPath, migrations)) // ErrNoChange swallowed
}
