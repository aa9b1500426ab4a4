package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// RunMigrations applies every pending migration from migrationsPath. The
// path comes from configuration so the server and the CLI share one source
// of truth for the schema.
func RunMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New(
		"file://"+migrationsPath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("schema already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info().Msg("schema migrations applied")
	return nil
}

// RunMigrationsDown rolls back the most recent migration.
func RunMigrationsDown(databaseURL, migrationsPath string) error {
	m, err := migrate.New(
		"file://"+migrationsPath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}

	log.Info().Msg("rolled back one migration")
	return nil
}
