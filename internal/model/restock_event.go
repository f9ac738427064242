package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockEvent records incoming stock from a supplier. ProductType is a free
// text label; restocks do not change StockItem quantities.
type RestockEvent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Date        time.Time `gorm:"not null"`
	SupplierID  uint      `gorm:"index;not null"`
	ProductType string
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt   time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
