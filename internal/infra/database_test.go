package infra_test

import (
	"path/filepath"
	"testing"
	"time"

	"inventario/internal/infra"
	"inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")

	db, err := infra.NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.StockItem{Name: "Tela", Type: "algodon", Quantity: decimal.NewFromInt(3)}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// Reopening runs the migration again without losing rows.
	db, err = infra.NewDatabase(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, infra.Migrate(db))

	var n int64
	require.NoError(t, db.Model(&model.StockItem{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	for _, table := range []string{"stock_items", "suppliers", "sales", "sale_lines", "restock_events"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewDatabase_ForeignKeysOnEveryConnection(t *testing.T) {
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// No idle connections: every statement below runs on a freshly opened one.
	sqlDB.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var enabled int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
		assert.Equal(t, 1, enabled)
	}

	err = db.Create(&model.RestockEvent{
		Date:       time.Now(),
		SupplierID: 99,
		Quantity:   decimal.NewFromInt(1),
		TotalPrice: decimal.NewFromInt(1),
	}).Error
	assert.Error(t, err)
}

func TestNewRedis_EmptyURLDisables(t *testing.T) {
	rdb, err := infra.NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := infra.NewRedis("not a url")
	assert.Error(t, err)
}
