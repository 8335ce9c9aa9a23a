package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/service"
	"github.com/jask/vacuumworld/internal/world"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one board with one algorithm and print a summary",
		RunE:  runSolve,
	}
	cmd.Flags().String("board", "", "saved board name from the library")
	cmd.Flags().Int("grid", 0, "inline board edge length (used when --board is empty)")
	cmd.Flags().String("dirt", "", `inline dirt cells, "x,y;x,y"`)
	cmd.Flags().String("agent", "0,0", `inline agent position, "x,y"`)
	cmd.Flags().String("algo", search.NameBFS, "algorithm name from the registry")
	cmd.Flags().Duration("max-duration", 0, "wall-clock ceiling (0 = default)")
	cmd.Flags().Int("max-nodes", 0, "node ceiling (0 = default)")
	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(cmd)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	algorithm, _ := cmd.Flags().GetString("algo")
	maxDuration, _ := cmd.Flags().GetDuration("max-duration")
	maxNodes, _ := cmd.Flags().GetInt("max-nodes")
	limits := search.Limits{
		MaxDuration: maxDuration,
		MaxNodes:    maxNodes,
		MaxDepth:    cfg.Search.MaxDepth,
	}
	if limits.MaxDuration == 0 {
		limits.MaxDuration = cfg.Search.MaxDuration
	}
	if limits.MaxNodes == 0 {
		limits.MaxNodes = cfg.Search.MaxNodes
	}

	var run service.SolveRun
	if boardName, _ := cmd.Flags().GetString("board"); boardName != "" {
		db, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("open board library: %w", err)
		}
		defer db.Close()
		solver := &service.SolverService{Boards: repository.NewBoardRepo(db), Limits: limits, Logger: logger}
		run, err = solver.SolveBoard(ctx, boardName, algorithm, nil, false)
		if err != nil {
			return err
		}
	} else {
		initial, gridSize, err := inlineState(cmd, cfg)
		if err != nil {
			return err
		}
		solver := &service.SolverService{Limits: limits, Logger: logger}
		run, err = solver.SolveState(initial, gridSize, algorithm, nil, false)
		if err != nil {
			return err
		}
	}

	res := run.Result
	fmt.Printf("algorithm:     %s\n", res.Algorithm)
	fmt.Printf("success:       %v\n", res.Success)
	fmt.Printf("steps:         %d\n", len(res.Path))
	fmt.Printf("nodes:         %d\n", res.NodesExpanded)
	fmt.Printf("frontier peak: %d\n", res.FrontierPeak)
	fmt.Printf("duration:      %s\n", res.Duration.Round(time.Microsecond))
	if res.Success {
		fmt.Printf("path:          %s\n", formatPath(res.Path))
	}
	return nil
}

func inlineState(cmd *cobra.Command, cfg config.Config) (world.State, int, error) {
	gridSize, _ := cmd.Flags().GetInt("grid")
	if gridSize == 0 {
		gridSize = cfg.World.GridSize
	}
	agentSpec, _ := cmd.Flags().GetString("agent")
	ps, err := world.ParsePositions(agentSpec)
	if err != nil || len(ps) != 1 {
		return world.State{}, 0, fmt.Errorf("bad --agent %q", agentSpec)
	}
	dirtSpec, _ := cmd.Flags().GetString("dirt")
	dirt, err := world.ParsePositions(dirtSpec)
	if err != nil {
		return world.State{}, 0, fmt.Errorf("bad --dirt: %w", err)
	}
	state := world.NewState(ps[0], dirt)
	if err := world.ValidateState(state, gridSize); err != nil {
		return world.State{}, 0, err
	}
	return state, gridSize, nil
}

func formatPath(path []world.Action) string {
	out := ""
	for i, a := range path {
		if i > 0 {
			out += " "
		}
		out += a.String()
	}
	return out
}
