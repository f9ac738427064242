package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart states. Committed and Abandoned are terminal.
const (
	CartEmpty     = "empty"
	CartBuilding  = "building"
	CartCommitted = "committed"
	CartAbandoned = "abandoned"
)

// PendingLine is one candidate sale line held in a cart.
type PendingLine struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PendingSale is the uncommitted cart of one sale-entry session.
// It is never written to the relational store.
type PendingSale struct {
	ID        uuid.UUID       `json:"id"`
	State     string          `json:"state"`
	Lines     []PendingLine   `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewPendingSale returns an empty cart with a fresh id.
func NewPendingSale() *PendingSale {
	return &PendingSale{
		ID:        uuid.New(),
		State:     CartEmpty,
		Lines:     []PendingLine{},
		Total:     decimal.Zero,
		CreatedAt: time.Now(),
	}
}

// Terminal reports whether the cart can no longer change.
func (p *PendingSale) Terminal() bool {
	return p.State == CartCommitted || p.State == CartAbandoned
}

// Clone returns a deep copy so stores never share line slices with callers.
func (p *PendingSale) Clone() *PendingSale {
	c := *p
	c.Lines = append([]PendingLine(nil), p.Lines...)
	if c.Lines == nil {
		c.Lines = []PendingLine{}
	}
	return &c
}
