package infra

import (
	"bytes"
	"fmt"

	"inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const stockSheet = "Inventario"

var stockHeaders = []string{"ID", "Nombre", "Tipo", "Tamaño", "Unidad", "Cantidad", "Precio Unitario", "Color", "Precio Anterior"}

// StockWorkbook writes the inventory table as a single-sheet xlsx workbook.
func StockWorkbook(items []model.StockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(stockSheet, "A1", &stockHeaders); err != nil {
		return nil, fmt.Errorf("xlsx: header row: %w", err)
	}

	for i, it := range items {
		row := []interface{}{
			it.ID,
			it.Name,
			it.Type,
			deref(it.Size),
			deref(it.Unit),
			it.Quantity.InexactFloat64(),
			decimalCell(it.UnitPrice),
			deref(it.Color),
			decimalCell(it.PreviousPrice),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(stockSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decimalCell(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}
