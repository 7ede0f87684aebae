package image

import (
	"Barcode-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImageRepository interface {
		Create(ctx context.Context, imageData *entities.ImageData) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.ImageData, error)
	}

	imageRepository struct {
		db *gorm.DB
	}
)

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, imageData *entities.ImageData) error {
	return r.db.WithContext(ctx).Create(imageData).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ImageData, error) {
	var imageData entities.ImageData
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&imageData).Error; err != nil {
		return nil, err
	}
	return &imageData, nil
}
