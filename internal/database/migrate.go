package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationsFS returns the goose migrations for driver ("postgres" or "sqlite").
func MigrationsFS(driver string) (fs.FS, error) {
	sub, err := fs.Sub(migrationsFS, path.Join("migrations", driver))
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}
	return sub, nil
}

// NewMigrator builds a goose provider over db using the migrations embedded
// for its driver.
func NewMigrator(db *sqlx.DB) (*goose.Provider, error) {
	driver := driverDialect(db.DriverName())
	fsys, err := MigrationsFS(driver)
	if err != nil {
		return nil, err
	}

	dialect := goose.DialectPostgres
	if driver == DriverSQLite {
		dialect = goose.DialectSQLite3
	}
	return goose.NewProvider(dialect, db.DB, fsys)
}

// Migrate applies every pending migration and returns the versions it applied.
func Migrate(ctx context.Context, db *sqlx.DB) ([]int64, error) {
	provider, err := NewMigrator(db)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}

	results, err := provider.Up(ctx)
	applied := make([]int64, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			applied = append(applied, r.Source.Version)
		}
	}
	if err != nil {
		return applied, fmt.Errorf("migrate: %w", err)
	}
	return applied, nil
}

func driverDialect(driverName string) string {
	if driverName == DriverSQLite {
		return DriverSQLite
	}
	return DriverPostgres
}
