package service

import (
	"context"
	"testing"
	"time"

	"inventario/internal/dto"
	"inventario/internal/infra/infratest"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	stock     StockService
	builder   SaleBuilder
	sales     repository.SaleRepository
	suppliers repository.SupplierRepository
	restocks  repository.RestockRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pinClock(t, time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC))

	db := infratest.NewDB(t)
	stock := NewStockService(repository.NewStockRepository(db))
	sales := repository.NewSaleRepository(db)
	return &fixture{
		db:        db,
		stock:     stock,
		builder:   NewSaleBuilder(stock, sales),
		sales:     sales,
		suppliers: repository.NewSupplierRepository(db),
		restocks:  repository.NewRestockRepository(db),
	}
}

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func (f *fixture) addItem(t *testing.T, name, price string) {
	t.Helper()
	p := dec(price)
	_, err := f.stock.Add(context.Background(), addReq(name, "10", &p))
	require.NoError(t, err)
}

func (f *fixture) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Table(table).Count(&n).Error)
	return n
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func addReq(name, quantity string, price *decimal.Decimal) dto.AddStockItemRequest {
	return dto.AddStockItemRequest{
		Name:      name,
		Type:      "general",
		Quantity:  dec(quantity),
		UnitPrice: price,
	}
}
