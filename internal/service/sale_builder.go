package service

import (
	"context"
	"strings"
	"sync"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleBuilder drives a PendingSale through its states:
//
//	empty ──AddLine──▶ building ──Commit──▶ committed
//	  │                   │
//	  └──────Discard──────┴──────────────▶ abandoned
//
// The cart is owned by the caller's session; the builder only mutates the
// value it is handed.
type SaleBuilder interface {
	NewCart() *model.PendingSale
	AddLine(ctx context.Context, cart *model.PendingSale, product string, quantity decimal.Decimal) error
	Commit(ctx context.Context, cart *model.PendingSale) (*dto.SaleResponse, error)
	Discard(cart *model.PendingSale) error
}

type saleBuilder struct {
	stock StockService
	sales repository.SaleRepository

	// commitMu serializes commits so concurrent sessions never interleave
	// header and line inserts on the same connection pool.
	commitMu sync.Mutex
}

func NewSaleBuilder(stock StockService, sales repository.SaleRepository) SaleBuilder {
	return &saleBuilder{stock: stock, sales: sales}
}

func (b *saleBuilder) NewCart() *model.PendingSale { return model.NewPendingSale() }

// AddLine prices one line at the product's current unit price and appends it.
// A quantity of zero is accepted and yields a zero subtotal.
func (b *saleBuilder) AddLine(ctx context.Context, cart *model.PendingSale, product string, quantity decimal.Decimal) error {
	if cart.Terminal() {
		return apierror.Invalid("cart", "cart is "+cart.State)
	}
	fields := fieldErrors{}
	product = strings.TrimSpace(product)
	if product == "" {
		fields["product"] = "required"
	}
	fields.amount("quantity", quantity, quantityScale)
	if err := fields.err(); err != nil {
		return err
	}

	item, err := b.stock.FindByName(ctx, product)
	if err != nil {
		return err
	}

	price := item.Price()
	cart.Lines = append(cart.Lines, model.PendingLine{
		Product:   item.Name,
		Quantity:  quantity,
		UnitPrice: price,
		Subtotal:  lineSubtotal(quantity, price),
	})
	cart.Total = sumSubtotals(cart.Lines)
	cart.State = model.CartBuilding
	return nil
}

// Commit persists the cart as one Sale header plus one SaleLine per pending
// line, all in one transaction. On failure the cart is left untouched so the
// user may retry.
func (b *saleBuilder) Commit(ctx context.Context, cart *model.PendingSale) (*dto.SaleResponse, error) {
	switch cart.State {
	case model.CartBuilding:
	case model.CartEmpty:
		return nil, apierror.Invalid("cart", "cart has no lines")
	default:
		return nil, apierror.Invalid("cart", "cart is "+cart.State)
	}

	b.commitMu.Lock()
	defer b.commitMu.Unlock()

	sale := model.Sale{
		Date:   today(),
		Total:  sumSubtotals(cart.Lines),
		Status: model.SaleActive,
		Lines:  make([]model.SaleLine, 0, len(cart.Lines)),
	}
	for _, l := range cart.Lines {
		sale.Lines = append(sale.Lines, model.SaleLine{
			Product:   l.Product,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}

	txErr := runTx(ctx, b.sales.DB(), func(tx *gorm.DB) error {
		return b.sales.Create(ctx, tx, &sale)
	})
	if txErr != nil {
		return nil, storageErr("commit sale", txErr)
	}

	cart.State = model.CartCommitted
	cart.Lines = []model.PendingLine{}
	cart.Total = decimal.Zero

	log.Info().
		Uint("sale_id", sale.ID).
		Str("cart_id", cart.ID.String()).
		Int("lines", len(sale.Lines)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("sale committed")
	return saleToResponse(&sale), nil
}

func (b *saleBuilder) Discard(cart *model.PendingSale) error {
	if cart.Terminal() {
		return apierror.Invalid("cart", "cart is "+cart.State)
	}
	cart.Lines = []model.PendingLine{}
	cart.Total = decimal.Zero
	cart.State = model.CartAbandoned
	return nil
}

// lineSubtotal is round(quantity × unit price, 2).
func lineSubtotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price).Round(2)
}

func sumSubtotals(lines []model.PendingLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// CartToResponse renders a pending cart for the presentation layer.
func CartToResponse(c *model.PendingSale) *dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, dto.CartLineResponse{
			Product:   l.Product,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.CartResponse{
		ID:    c.ID.String(),
		State: c.State,
		Lines: lines,
		Total: c.Total,
	}
}
