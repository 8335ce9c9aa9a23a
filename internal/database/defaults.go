package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/world"
)

// SeedDefaults ensures a couple of starter boards exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewBoardRepo(db)
	existing, err := repo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	defaults := []repository.Board{
		{
			Name:     "corners",
			GridSize: 5,
			Dirt:     world.FormatPositions([]world.Position{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}}),
		},
		{
			Name:     "diagonal",
			GridSize: 5,
			AgentX:   2,
			AgentY:   2,
			Dirt:     world.FormatPositions([]world.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 3}, {X: 4, Y: 4}}),
		},
		{
			Name:     "saturated",
			GridSize: 10,
			Dirt:     world.FormatPositions(fullGrid(10)),
		},
	}
	for _, b := range defaults {
		b.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("board:"+b.Name)).String()
		if err := repo.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func fullGrid(size int) []world.Position {
	out := make([]world.Position, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out = append(out, world.Position{X: x, Y: y})
		}
	}
	return out
}
