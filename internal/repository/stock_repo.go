package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// StockRepository defines the data access contract for stock items.
// Services depend on this interface, not on the concrete GORM implementation.
type StockRepository interface {
	Create(ctx context.Context, s *model.StockItem) error
	List(ctx context.Context) ([]model.StockItem, error)
	// FindFirstByName returns the lowest-id item with exactly that name.
	FindFirstByName(ctx context.Context, name string) (*model.StockItem, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Create(ctx context.Context, s *model.StockItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stockRepo) List(ctx context.Context) ([]model.StockItem, error) {
	items := []model.StockItem{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *stockRepo) FindFirstByName(ctx context.Context, name string) (*model.StockItem, error) {
	var s model.StockItem
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&s).Error
	return &s, err
}
