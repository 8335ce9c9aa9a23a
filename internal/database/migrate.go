package database

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsPath returns the migrations directory for the binaries. The
// default is relative to the repo root; VACUUM_MIGRATIONS overrides it so
// installed binaries can run from anywhere.
func MigrationsPath() string {
	if p := os.Getenv("VACUUM_MIGRATIONS"); p != "" {
		return p
	}
	return "internal/database/migrations"
}

// RunMigrations applies all up migrations found at migrationsPath.
func RunMigrations(dbPath, migrationsPath string) error {
	dsn := fmt.Sprintf("sqlite3://file:%s?_foreign_keys=on", dbPath)

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}
