package infra_test

import (
	"bytes"
	"testing"

	"inventario/internal/infra"
	"inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStockWorkbook(t *testing.T) {
	unit := "m"
	price := decimal.RequireFromString("4.25")
	items := []model.StockItem{
		{ID: 1, Name: "Tela", Type: "algodon", Unit: &unit, Quantity: decimal.RequireFromString("12.5"), UnitPrice: &price},
		{ID: 2, Name: "Boton", Type: "mercerias", Quantity: decimal.NewFromInt(100)},
	}

	data, err := infra.StockWorkbook(items)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nombre", rows[0][1])
	assert.Equal(t, []string{"1", "Tela", "algodon", "", "m", "12.5", "4.25"}, rows[1])
	assert.Equal(t, "Boton", rows[2][1])
	assert.Equal(t, "100", rows[2][5])
}

func TestStockWorkbook_Empty(t *testing.T) {
	data, err := infra.StockWorkbook(nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Inventario")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
