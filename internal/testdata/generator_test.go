package testdata

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/vacuumworld/internal/database"
	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/world"
)

func TestRandomStateIsReproducible(t *testing.T) {
	t.Parallel()

	a := RandomState(rand.New(rand.NewSource(5)), 6, 0.4)
	b := RandomState(rand.New(rand.NewSource(5)), 6, 0.4)
	require.Equal(t, a.Key(), b.Key())

	agent := a.Agent()
	require.GreaterOrEqual(t, agent.X, 0)
	require.Less(t, agent.X, 6)
	require.GreaterOrEqual(t, agent.Y, 0)
	require.Less(t, agent.Y, 6)
}

func TestSeedStoresSampleBoards(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	boards := repository.NewBoardRepo(db)
	require.NoError(t, Seed(ctx, boards, rand.New(rand.NewSource(1)), 4))

	saved, err := boards.List(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 4)

	for _, b := range saved {
		require.GreaterOrEqual(t, b.GridSize, world.MinGridSize)
		require.LessOrEqual(t, b.GridSize, world.MaxGridSize)
		_, err := world.ParsePositions(b.Dirt)
		require.NoError(t, err)
	}
}
