package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddStockItemRequest struct {
	Name          string           `json:"name"           validate:"required,max=120"`
	Type          string           `json:"type"           validate:"required,max=60"`
	Size          *string          `json:"size"`
	Unit          *string          `json:"unit"`
	Quantity      decimal.Decimal  `json:"quantity"       validate:"min=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price"     validate:"omitempty,min=0"`
	Color         *string          `json:"color"`
	PreviousPrice *decimal.Decimal `json:"previous_price" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockItemResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Size          *string          `json:"size"`
	Unit          *string          `json:"unit"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Color         *string          `json:"color"`
	PreviousPrice *decimal.Decimal `json:"previous_price"`
}

type StockListResponse struct {
	Data  []StockItemResponse `json:"data"`
	Total int                 `json:"total"`
}
