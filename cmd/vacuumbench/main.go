package main

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/database"
)

func main() {
	root := &cobra.Command{
		Use:   "vacuumbench",
		Short: "Headless runner for the vacuum world search strategies",
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	root.AddCommand(newSolveCommand())
	root.AddCommand(newBenchCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openLibrary opens the configured board library, creating and migrating it
// when missing. Callers that only use inline boards can skip it.
func openLibrary(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.Database.Path, database.MigrationsPath()); err != nil {
		return nil, err
	}
	return database.Open(cfg.Database.Path)
}
