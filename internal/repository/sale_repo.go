package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRepository interface {
	// Create writes the header and then its lines. Callers pass the tx that
	// makes both steps one unit.
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	// UpdateStatus returns the number of rows matched by id.
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	db := pick(tx, r.db).WithContext(ctx)
	lines := s.Lines
	if err := db.Omit(clause.Associations).Create(s).Error; err != nil {
		return err
	}
	for i := range lines {
		lines[i].SaleID = s.ID
		if err := db.Omit(clause.Associations).Create(&lines[i]).Error; err != nil {
			return err
		}
	}
	s.Lines = lines
	return nil
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Sale{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}
