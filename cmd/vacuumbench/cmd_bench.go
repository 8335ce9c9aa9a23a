package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/service"
)

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a YAML scenario (boards x algorithms) and write a CSV report",
		RunE:  runBench,
	}
	cmd.Flags().String("scenario", "", "path to the scenario YAML file (required)")
	cmd.Flags().String("out", "", "CSV output path (default stdout)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(cmd)

	scenarioPath, _ := cmd.Flags().GetString("scenario")
	scenario, err := service.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	bench := &service.BenchService{Logger: logger}
	if needsLibrary(scenario) {
		db, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("open board library: %w", err)
		}
		defer db.Close()
		bench.Boards = repository.NewBoardRepo(db)
	}

	rows, err := bench.Run(ctx, scenario)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
		logger.Info("writing report", "path", outPath, "rows", len(rows))
	}
	return service.WriteCSV(out, rows)
}

func needsLibrary(sc service.Scenario) bool {
	for _, b := range sc.Boards {
		if b.Name != "" {
			return true
		}
	}
	return false
}
