package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Supplier) error
	// FindFirstByName returns the lowest-id supplier with exactly that name.
	FindFirstByName(ctx context.Context, tx *gorm.DB, name string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
}

type RestockRepository interface {
	Create(ctx context.Context, tx *gorm.DB, e *model.RestockEvent) error
	List(ctx context.Context) ([]model.RestockEvent, error)
	DB() *gorm.DB
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Supplier) error {
	return pick(tx, r.db).WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindFirstByName(ctx context.Context, tx *gorm.DB, name string) (*model.Supplier, error) {
	var s model.Supplier
	err := pick(tx, r.db).WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&s).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&suppliers).Error
	return suppliers, err
}

type restockRepo struct{ db *gorm.DB }

func NewRestockRepository(db *gorm.DB) RestockRepository { return &restockRepo{db: db} }

func (r *restockRepo) DB() *gorm.DB { return r.db }

func (r *restockRepo) Create(ctx context.Context, tx *gorm.DB, e *model.RestockEvent) error {
	return pick(tx, r.db).WithContext(ctx).Omit("Supplier").Create(e).Error
}

func (r *restockRepo) List(ctx context.Context) ([]model.RestockEvent, error) {
	events := []model.RestockEvent{}
	err := r.db.WithContext(ctx).Preload("Supplier").Order("id ASC").Find(&events).Error
	return events, err
}
