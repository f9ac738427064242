package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale statuses. A sale starts active and may move to voided exactly once.
const (
	SaleActive = "active"
	SaleVoided = "voided"
)

// Sale is the header of a committed transaction. Total is fixed at commit
// time as the sum of its line subtotals.
type Sale struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Date      time.Time       `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status    string          `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lines []SaleLine `gorm:"foreignKey:SaleID"`
}

// SaleLine is one item within a sale. Product is a copy of the stock item name
// at sale time, not a reference, and the subtotal is never recomputed.
type SaleLine struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	SaleID    uint            `gorm:"index;not null"`
	Product   string          `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Sale *Sale `gorm:"foreignKey:SaleID"`
}
