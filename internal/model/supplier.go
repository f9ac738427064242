package model

import "time"

// Supplier is a restocking counterparty.
type Supplier struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"index;not null"`
	Contact   *string
	CreatedAt time.Time

	Restocks []RestockEvent `gorm:"foreignKey:SupplierID"`
}
