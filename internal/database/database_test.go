package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &Config{Driver: "oracle"})
	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}

func TestOpenSQLiteEnablesForeignKeys(t *testing.T) {
	db, err := Open(context.Background(), &Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.Get(&enabled, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, enabled)
}

func TestMigrationsFSPerDriver(t *testing.T) {
	for _, driver := range []string{DriverPostgres, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			fsys, err := MigrationsFS(driver)
			require.NoError(t, err)
			names, err := fs.Glob(fsys, "*.sql")
			require.NoError(t, err)
			assert.Equal(t, []string{"00001_create_catalog.sql"}, names)
		})
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, applied)

	applied, err = Migrate(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var tables []string
	require.NoError(t, db.Select(&tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('categories', 'products', 'product_categories') ORDER BY name"))
	assert.Equal(t, []string{"categories", "product_categories", "products"}, tables)

	var version int64
	require.NoError(t, db.Get(&version, "SELECT MAX(version_id) FROM goose_db_version"))
	assert.Equal(t, int64(1), version)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	_, err = Migrate(ctx, db)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO categories (name) VALUES ('shoes')")
	require.NoError(t, err)
	_, dupErr := db.Exec("INSERT INTO categories (name) VALUES ('shoes')")
	require.Error(t, dupErr)

	_, fkErr := db.Exec("INSERT INTO product_categories (product_id, category_id) VALUES (42, 42)")
	require.Error(t, fkErr)

	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped postgres unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique", dupErr, true},
		{"sqlite foreign key", fkErr, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}

func TestUnicodeLowerOnSQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var got string
	require.NoError(t, db.Get(&got, "SELECT "+LowerFunc(DriverSQLite)+"(?)", "ÉCLAIR Crème"))
	assert.Equal(t, "éclair crème", got)

	var null *string
	require.NoError(t, db.Get(&null, "SELECT "+LowerFunc(DriverSQLite)+"(NULL)"))
	assert.Nil(t, null)

	assert.Equal(t, "LOWER", LowerFunc(DriverPostgres))
}
