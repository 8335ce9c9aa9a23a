package testdata

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/world"
)

// RandomState builds a reproducible board state for tests and benches: the
// agent somewhere on the grid, each cell dirty with the given probability.
func RandomState(r *rand.Rand, gridSize int, dirtProbability float64) world.State {
	agent := world.Position{X: r.Intn(gridSize), Y: r.Intn(gridSize)}
	var dirt []world.Position
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			if r.Float64() < dirtProbability {
				dirt = append(dirt, world.Position{X: x, Y: y})
			}
		}
	}
	return world.NewState(agent, dirt)
}

// Seed stores n random sample boards in the library.
func Seed(ctx context.Context, boards *repository.BoardRepo, r *rand.Rand, n int) error {
	for i := 0; i < n; i++ {
		gridSize := world.MinGridSize + r.Intn(world.MaxGridSize-world.MinGridSize+1)
		state := RandomState(r, gridSize, 0.3)
		agent := state.Agent()
		b := repository.Board{
			ID:       uuid.NewString(),
			Name:     "sample-" + strconv.Itoa(i),
			GridSize: gridSize,
			AgentX:   agent.X,
			AgentY:   agent.Y,
			Dirt:     world.FormatPositions(state.Dirt()),
		}
		if err := boards.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
