package db

import (
	"errors"
	"fmt"
	"strings"

	"gaming-zone-booking/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// driver
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationStatus struct {
	Version uint
	Dirty   bool
	Applied bool
}

// NewMigrator opens golang-migrate against the directory holding the *.sql files.
func NewMigrator(cfg config.DBConfig, migrationsPath string) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+migrationsPath, migrationURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. No pending migration is not an error.
func MigrateUp(cfg config.DBConfig, migrationsPath string) error {
	m, err := NewMigrator(cfg, migrationsPath)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func MigrateDown(cfg config.DBConfig, migrationsPath string, steps int) error {
	m, err := NewMigrator(cfg, migrationsPath)
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

func Status(cfg config.DBConfig, migrationsPath string) (MigrationStatus, error) {
	m, err := NewMigrator(cfg, migrationsPath)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer closeMigrator(m)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

func migrationURL(cfg config.DBConfig) string {
	return strings.Replace(cfg.BuildDSN(), "postgres://", "pgx5://", 1)
}

func closeMigrator(m *migrate.Migrate) {
	_, _ = m.Close()
}
