package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the input of the receipt renderer. It is composed at print time
// and never persisted.
type Receipt struct {
	CustomerName string
	Total        decimal.Decimal
	Date         time.Time
}
