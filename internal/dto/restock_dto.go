package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRestockRequest struct {
	SupplierName    string          `json:"supplier_name"    validate:"required"`
	SupplierContact *string         `json:"supplier_contact"`
	ProductType     string          `json:"product_type"`
	Quantity        decimal.Decimal `json:"quantity"         validate:"min=0"`
	TotalPrice      decimal.Decimal `json:"total_price"      validate:"min=0"`
	TaxRate         decimal.Decimal `json:"tax_rate"         validate:"min=0,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
}

type RestockResponse struct {
	ID          uint             `json:"id"`
	Date        string           `json:"date"`
	Supplier    SupplierResponse `json:"supplier"`
	ProductType string           `json:"product_type"`
	Quantity    decimal.Decimal  `json:"quantity"`
	TotalPrice  decimal.Decimal  `json:"total_price"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
}
