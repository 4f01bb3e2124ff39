package store

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joeri-hu/tracktune/internal/store/migrations"
)

// MigrateResult reports the settings schema version after a migration run
// and whether the run applied anything.
type MigrateResult struct {
	Version uint
	Changed bool
}

// Migrate brings the settings schema up to the latest embedded version.
// A dirty schema (a prior run died mid-migration) is refused rather than
// papered over; the rig database needs manual repair at that point.
func (st *DB) Migrate() (*MigrateResult, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("settings migrations: %w", err)
	}
	drv, err := sqlite3.WithInstance(st.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("settings migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		return nil, fmt.Errorf("settings migrations: %w", err)
	}

	changed := true
	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		changed = false
	case err != nil:
		return nil, fmt.Errorf("settings migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return nil, fmt.Errorf("settings schema version: %w", err)
	}
	if dirty {
		return nil, fmt.Errorf("settings schema dirty at version %d", version)
	}
	return &MigrateResult{Version: version, Changed: changed}, nil
}
