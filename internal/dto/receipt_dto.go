package dto

import "github.com/shopspring/decimal"

// ManualReceiptRequest is the free-form receipt form; it is not linked to any
// stored sale.
type ManualReceiptRequest struct {
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total" validate:"min=0"`
	// Date is YYYY-MM-DD; empty means today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MenuEntry describes one operation of the menu-driven surface.
type MenuEntry struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Method string `json:"method"`
	Path   string `json:"path"`
}
