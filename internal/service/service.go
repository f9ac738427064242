package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventario/internal/apierror"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// now is the service clock; tests replace it to pin sale and restock dates.
var now = time.Now

// today returns the current calendar date at midnight UTC, so that the stored
// date does not drift with the server time zone.
func today() time.Time {
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// storageErr wraps persistence failures, passing domain errors through.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *apierror.ValidationError
	var nf *apierror.NotFoundError
	var se *apierror.StorageError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &se) {
		return err
	}
	return apierror.Storage(op, err)
}

// fieldErrors accumulates field-level validation failures.
type fieldErrors map[string]string

// Column scales. Values finer than the column would be truncated on storage
// while subtotals were computed from the unrounded value.
const (
	quantityScale = 3
	moneyScale    = 2
)

// amount checks that d is non-negative and fits in places decimals.
func (f fieldErrors) amount(field string, d decimal.Decimal, places int32) {
	if d.IsNegative() {
		f[field] = "must be >= 0"
		return
	}
	if !d.Equal(d.Round(places)) {
		f[field] = fmt.Sprintf("at most %d decimal places", places)
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &apierror.ValidationError{Fields: f}
}
