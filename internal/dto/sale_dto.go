package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddLineRequest struct {
	Product  string          `json:"product"  validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CartLineResponse struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	ID    string             `json:"id"`
	State string             `json:"state"` // empty | building | committed | abandoned
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

type SaleLineResponse struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID     uint               `json:"id"`
	Date   string             `json:"date"`
	Total  decimal.Decimal    `json:"total"`
	Status string             `json:"status"` // active | voided
	Lines  []SaleLineResponse `json:"lines"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int            `json:"total"`
}
