package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/rs/zerolog/log"
)

type SaleService interface {
	ListSales(ctx context.Context) (*dto.SaleListResponse, error)
	// VoidSale flips the sale status to voided. It never touches stock
	// quantities or totals.
	VoidSale(ctx context.Context, id uint) error
}

type saleService struct {
	repo repository.SaleRepository
	// strictVoid reports NotFoundError for unknown ids instead of the
	// permissive no-op success.
	strictVoid bool
}

func NewSaleService(repo repository.SaleRepository, strictVoid bool) SaleService {
	return &saleService{repo: repo, strictVoid: strictVoid}
}

// ListSales returns every sale, active or voided, with its lines.
func (s *saleService) ListSales(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list sales", err)
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: data, Total: len(data)}, nil
}

// VoidSale is idempotent: voiding a voided sale succeeds with no change.
// UpdateStatus counts matched rows (Postgres and SQLite semantics), so a
// repeated void still reports the row as found.
func (s *saleService) VoidSale(ctx context.Context, id uint) error {
	rows, err := s.repo.UpdateStatus(ctx, id, model.SaleVoided)
	if err != nil {
		return storageErr("void sale", err)
	}
	if rows == 0 {
		if s.strictVoid {
			return apierror.NotFound("sale", id)
		}
		log.Warn().Uint("sale_id", id).Msg("void requested for unknown sale")
		return nil
	}
	log.Info().Uint("sale_id", id).Msg("sale voided")
	return nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			Product:   l.Product,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:     s.ID,
		Date:   s.Date.UTC().Format(dateLayout),
		Total:  s.Total,
		Status: s.Status,
		Lines:  lines,
	}
}
