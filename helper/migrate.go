// Package helper wraps golang-migrate for the schema under
// migrations/postgres. Migrations always run against the write endpoint.
package helper

import (
	"errors"
	"fmt"
	"net"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"roombook/config"
)

const sourceURL = "file://migrations/postgres"

func newMigrate(config *config.Config) (*migrate.Migrate, error) {
	pg := config.DB.Postgres

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		pg.Write.Username,
		pg.Write.Password,
		net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		pg.Prefix+pg.Write.Name,
		pg.Write.SSLMode,
		pg.MigrationTable,
	)

	mig, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// run executes step against a fresh migrate instance. migrate.ErrNoChange
// means the schema is already where it should be, so it is not a failure.
func run(config *config.Config, name string, step func(*migrate.Migrate) error) error {
	mig, err := newMigrate(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration action %q: %w", name, err)
	}

	log.Info().Str("action", name).Msg("Database migration action completed")

	return nil
}

func Up(config *config.Config) error {
	return run(config, "up", (*migrate.Migrate).Up)
}

// StepUp applies exactly one pending migration.
func StepUp(config *config.Config) error {
	return run(config, "step-up", func(m *migrate.Migrate) error {
		return m.Steps(1) //nolint:wrapcheck
	})
}

// Down rolls back the most recent migration.
func Down(config *config.Config) error {
	return run(config, "down", func(m *migrate.Migrate) error {
		return m.Steps(-1) //nolint:wrapcheck
	})
}

// Drop rolls back every migration.
func Drop(config *config.Config) error {
	return run(config, "drop", (*migrate.Migrate).Down)
}
