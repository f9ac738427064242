package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxTaxRate = decimal.NewFromInt(100)

type RestockService interface {
	// Register records one incoming-stock event and its supplier. Stock item
	// quantities are not adjusted.
	Register(ctx context.Context, req dto.RegisterRestockRequest) (*dto.RestockResponse, error)
	ListRestocks(ctx context.Context) ([]dto.RestockResponse, error)
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
}

type restockService struct {
	repo      repository.RestockRepository
	suppliers repository.SupplierRepository
	// dedup reuses the first supplier with the same name instead of
	// creating a new row on every restock.
	dedup bool

	mu sync.Mutex
}

func NewRestockService(repo repository.RestockRepository, suppliers repository.SupplierRepository, dedup bool) RestockService {
	return &restockService{repo: repo, suppliers: suppliers, dedup: dedup}
}

func (s *restockService) Register(ctx context.Context, req dto.RegisterRestockRequest) (*dto.RestockResponse, error) {
	fields := fieldErrors{}
	name := strings.TrimSpace(req.SupplierName)
	if name == "" {
		fields["supplier_name"] = "required"
	}
	fields.amount("quantity", req.Quantity, quantityScale)
	fields.amount("total_price", req.TotalPrice, moneyScale)
	if req.TaxRate.IsNegative() || req.TaxRate.GreaterThan(maxTaxRate) {
		fields["tax_rate"] = "must be between 0 and 100"
	} else {
		fields.amount("tax_rate", req.TaxRate, moneyScale)
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var supplier *model.Supplier
	event := &model.RestockEvent{
		Date:        today(),
		ProductType: strings.TrimSpace(req.ProductType),
		Quantity:    req.Quantity,
		TotalPrice:  req.TotalPrice,
		TaxRate:     req.TaxRate,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		sup, err := s.resolveSupplier(ctx, tx, name, req.SupplierContact)
		if err != nil {
			return err
		}
		supplier = sup
		event.SupplierID = sup.ID
		return s.repo.Create(ctx, tx, event)
	})
	if txErr != nil {
		return nil, storageErr("register restock", txErr)
	}
	event.Supplier = supplier

	log.Info().
		Uint("restock_id", event.ID).
		Uint("supplier_id", supplier.ID).
		Str("product_type", event.ProductType).
		Msg("restock registered")
	return restockToResponse(event), nil
}

func (s *restockService) resolveSupplier(ctx context.Context, tx *gorm.DB, name string, contact *string) (*model.Supplier, error) {
	if s.dedup {
		existing, err := s.suppliers.FindFirstByName(ctx, tx, name)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	sup := &model.Supplier{Name: name, Contact: contact}
	if err := s.suppliers.Create(ctx, tx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *restockService) ListRestocks(ctx context.Context) ([]dto.RestockResponse, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list restocks", err)
	}
	out := make([]dto.RestockResponse, 0, len(events))
	for i := range events {
		out = append(out, *restockToResponse(&events[i]))
	}
	return out, nil
}

func (s *restockService) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, storageErr("list suppliers", err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func supplierToResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact}
}

func restockToResponse(e *model.RestockEvent) *dto.RestockResponse {
	resp := &dto.RestockResponse{
		ID:          e.ID,
		Date:        e.Date.UTC().Format(dateLayout),
		Supplier:    dto.SupplierResponse{ID: e.SupplierID},
		ProductType: e.ProductType,
		Quantity:    e.Quantity,
		TotalPrice:  e.TotalPrice,
		TaxRate:     e.TaxRate,
	}
	if e.Supplier != nil {
		resp.Supplier = supplierToResponse(e.Supplier)
	}
	return resp
}
