package product

import (
	"Barcode-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		Create(ctx context.Context, product *entities.Product) error
		Update(ctx context.Context, product *entities.Product) error
		GetByBarcode(ctx context.Context, barcode string) (*entities.Product, error)
		Search(ctx context.Context, query string, limit int) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) GetByBarcode(ctx context.Context, barcode string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name asc").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
