// Package infratest opens throwaway databases for package tests.
package infratest

import (
	"testing"

	"inventario/internal/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database that is closed when the
// test ends. The pool holds a single connection, so the data lives exactly
// as long as the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
