package service

import (
	"context"
	"errors"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"gorm.io/gorm"
)

// ReceiptRenderer turns a receipt into a printable document. Implementations
// are stateless; the returned bytes belong to the caller.
type ReceiptRenderer interface {
	Render(r model.Receipt) ([]byte, error)
}

type ReceiptService interface {
	// Manual renders a free-form receipt not linked to any stored sale.
	Manual(ctx context.Context, req dto.ManualReceiptRequest) ([]byte, error)
	// ForSale renders a receipt with a stored sale's total and date.
	ForSale(ctx context.Context, saleID uint, customer string) ([]byte, error)
}

type receiptService struct {
	renderer ReceiptRenderer
	sales    repository.SaleRepository
}

func NewReceiptService(renderer ReceiptRenderer, sales repository.SaleRepository) ReceiptService {
	return &receiptService{renderer: renderer, sales: sales}
}

func (s *receiptService) Manual(_ context.Context, req dto.ManualReceiptRequest) ([]byte, error) {
	fields := fieldErrors{}
	fields.amount("total", req.Total, moneyScale)
	date := today()
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			fields["date"] = "must be YYYY-MM-DD"
		}
		date = d
	}
	if err := fields.err(); err != nil {
		return nil, err
	}
	return s.renderer.Render(model.Receipt{
		CustomerName: req.CustomerName,
		Total:        req.Total,
		Date:         date,
	})
}

func (s *receiptService) ForSale(ctx context.Context, saleID uint, customer string) ([]byte, error) {
	sale, err := s.sales.FindByID(ctx, saleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("sale", saleID)
	}
	if err != nil {
		return nil, storageErr("find sale", err)
	}
	return s.renderer.Render(model.Receipt{
		CustomerName: customer,
		Total:        sale.Total,
		Date:         sale.Date.UTC(),
	})
}
