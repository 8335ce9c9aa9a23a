package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/world"
)

// ErrBoardNotFound is returned when a named board is not in the library.
var ErrBoardNotFound = errors.New("service: board not found")

// SolverService runs search strategies against live or saved boards.
type SolverService struct {
	Boards *repository.BoardRepo
	Limits search.Limits
	Logger *slog.Logger
}

// SolveRun couples one solver invocation with its run ID.
type SolveRun struct {
	RunID     string
	Board     string // saved board name, empty for ad-hoc states
	Algorithm string
	Result    search.Result
}

// SolveState runs the named algorithm against an in-memory state.
func (s *SolverService) SolveState(initial world.State, gridSize int, algorithm string, prog *search.Progress, capture bool) (SolveRun, error) {
	run := SolveRun{RunID: uuid.NewString(), Algorithm: algorithm}
	result, err := search.Solve(algorithm, initial, gridSize, prog, search.Options{Limits: s.Limits, Capture: capture})
	if err != nil {
		return run, err
	}
	run.Result = result
	s.logRun(run)
	return run, nil
}

// SolveBoard loads a saved board by name and solves it.
func (s *SolverService) SolveBoard(ctx context.Context, boardName, algorithm string, prog *search.Progress, capture bool) (SolveRun, error) {
	board, err := s.Boards.GetByName(ctx, boardName)
	if err != nil {
		return SolveRun{}, fmt.Errorf("load board %q: %w", boardName, err)
	}
	if board == nil {
		return SolveRun{}, fmt.Errorf("%w: %q", ErrBoardNotFound, boardName)
	}
	initial, gridSize, err := BoardState(*board)
	if err != nil {
		return SolveRun{}, err
	}
	run, err := s.SolveState(initial, gridSize, algorithm, prog, capture)
	run.Board = board.Name
	return run, err
}

// logRun emits a one-line summary when a logger is attached.
func (s *SolverService) logRun(run SolveRun) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("solve finished",
		"run_id", run.RunID,
		"algorithm", run.Result.Algorithm,
		"success", run.Result.Success,
		"steps", len(run.Result.Path),
		"nodes", run.Result.NodesExpanded,
		"frontier_peak", run.Result.FrontierPeak,
		"duration", run.Result.Duration,
	)
}

// BoardState decodes a stored board into a search state and grid size. The
// dirt column is free text and the board may have been saved at a larger
// grid size, so bounds are re-checked here rather than trusted.
func BoardState(b repository.Board) (world.State, int, error) {
	dirt, err := world.ParsePositions(b.Dirt)
	if err != nil {
		return world.State{}, 0, fmt.Errorf("board %q: %w", b.Name, err)
	}
	state := world.NewState(world.Position{X: b.AgentX, Y: b.AgentY}, dirt)
	if err := world.ValidateState(state, b.GridSize); err != nil {
		return world.State{}, 0, fmt.Errorf("board %q: %w", b.Name, err)
	}
	return state, b.GridSize, nil
}
