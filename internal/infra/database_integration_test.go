//go:build integration

package infra_test

import (
	"context"
	"testing"
	"time"

	"inventario/internal/infra"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func TestNewDatabase_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("inventario"),
		tcPostgres.WithUsername("inventario"),
		tcPostgres.WithPassword("inventario"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	sales := repository.NewSaleRepository(db)
	sale := &model.Sale{
		Date:   time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		Total:  decimal.RequireFromString("13.50"),
		Status: model.SaleActive,
		Lines: []model.SaleLine{
			{Product: "A", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("5.00"), Subtotal: decimal.RequireFromString("10.00")},
			{Product: "B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("3.50"), Subtotal: decimal.RequireFromString("3.50")},
		},
	}
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error { return sales.Create(ctx, tx, sale) }))

	got, err := sales.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "13.50", got.Total.StringFixed(2))
	assert.Equal(t, "2026-10-14", got.Date.UTC().Format("2006-01-02"))
	require.Len(t, got.Lines, 2)

	rows, err := sales.UpdateStatus(ctx, sale.ID, model.SaleVoided)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
}
