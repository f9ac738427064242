package service

import (
	"context"
	"errors"
	"strings"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/infra"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockService defines the business logic contract for stock items.
type StockService interface {
	Add(ctx context.Context, req dto.AddStockItemRequest) (*dto.StockItemResponse, error)
	List(ctx context.Context) (*dto.StockListResponse, error)
	// Export returns the inventory as an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
	// FindByName resolves a product name typed into a sale line.
	FindByName(ctx context.Context, name string) (*model.StockItem, error)
}

type stockService struct {
	repo repository.StockRepository
}

func NewStockService(repo repository.StockRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Add(ctx context.Context, req dto.AddStockItemRequest) (*dto.StockItemResponse, error) {
	fields := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	typ := strings.TrimSpace(req.Type)
	if name == "" {
		fields["name"] = "required"
	}
	if typ == "" {
		fields["type"] = "required"
	}
	fields.amount("quantity", req.Quantity, quantityScale)
	if req.UnitPrice != nil {
		fields.amount("unit_price", *req.UnitPrice, moneyScale)
	}
	if req.PreviousPrice != nil {
		fields.amount("previous_price", *req.PreviousPrice, moneyScale)
	}
	if err := fields.err(); err != nil {
		return nil, err
	}

	item := &model.StockItem{
		Name:          name,
		Type:          typ,
		Size:          req.Size,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Color:         req.Color,
		PreviousPrice: req.PreviousPrice,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storageErr("add stock item", err)
	}
	log.Info().Uint("stock_item_id", item.ID).Str("name", item.Name).Msg("stock item added")
	return stockToResponse(item), nil
}

func (s *stockService) List(ctx context.Context) (*dto.StockListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list stock", err)
	}
	data := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		data = append(data, *stockToResponse(&items[i]))
	}
	return &dto.StockListResponse{Data: data, Total: len(data)}, nil
}

func (s *stockService) Export(ctx context.Context) ([]byte, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list stock", err)
	}
	return infra.StockWorkbook(items)
}

func (s *stockService) FindByName(ctx context.Context, name string) (*model.StockItem, error) {
	item, err := s.repo.FindFirstByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("stock item", name)
	}
	if err != nil {
		return nil, storageErr("find stock item", err)
	}
	return item, nil
}

func stockToResponse(s *model.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:            s.ID,
		Name:          s.Name,
		Type:          s.Type,
		Size:          s.Size,
		Unit:          s.Unit,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Color:         s.Color,
		PreviousPrice: s.PreviousPrice,
	}
}
