package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jask/vacuumworld/internal/config"
	"github.com/jask/vacuumworld/internal/database"
	"github.com/jask/vacuumworld/internal/database/repository"
	"github.com/jask/vacuumworld/internal/search"
	"github.com/jask/vacuumworld/internal/service"
	"github.com/jask/vacuumworld/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, database.MigrationsPath()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	boards := repository.NewBoardRepo(db)
	solver := &service.SolverService{
		Boards: boards,
		Limits: search.Limits{
			MaxDuration: cfg.Search.MaxDuration,
			MaxNodes:    cfg.Search.MaxNodes,
			MaxDepth:    cfg.Search.MaxDepth,
		},
	}

	if err := tui.Run(ctx, cfg, boards, solver); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
