package repository

import (
	"context"
	"errors"

	"productstore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrMissingID is returned by Update when the product was never persisted.
// It is a validation failure, detected before any SQL is issued.
var ErrMissingID = errors.New("update called with empty id field")

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Find(ctx context.Context, id uint) (*model.Product, error)
	All(ctx context.Context) ([]model.Product, error)
	FindByName(ctx context.Context, name string) ([]model.Product, error)
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, p *model.Product) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Find returns (nil, nil) when no row matches: absence is an expected outcome
// callers check for, not an error.
func (r *productRepo) Find(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) All(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("category = ?", category).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("available = ?", available).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("price = ?", price).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	if p.ID == 0 {
		return ErrMissingID
	}
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the row matching the instance's id. Deleting a row that no
// longer exists is not an error.
func (r *productRepo) Delete(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, p.ID).Error
}
