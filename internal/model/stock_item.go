package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one inventory record. Quantity is a decimal so that fractional
// units (linear meters, kilos) fit the same column as whole pieces.
type StockItem struct {
	ID            uint             `gorm:"primaryKey;autoIncrement"`
	Name          string           `gorm:"index;not null"`
	Type          string           `gorm:"not null"`
	Size          *string
	Unit          *string
	Quantity      decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	UnitPrice     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Color         *string
	PreviousPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt     time.Time
}

// Price returns the unit price, treating an unset price as zero.
func (s StockItem) Price() decimal.Decimal {
	if s.UnitPrice == nil {
		return decimal.Zero
	}
	return *s.UnitPrice
}
