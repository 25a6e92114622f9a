// Package dbtest provides migrated in-memory databases for repository tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a fresh, fully migrated in-memory sqlite database that is
// closed when the test ends.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}
