package image

import (
	"Barcode-API/domain"
	"Barcode-API/entities"
	"context"
	"errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImageService interface {
		StoreImage(ctx context.Context, data []byte) (uuid.UUID, error)
		// GetImage returns the stored bytes and a content type sniffed from
		// those bytes. No stored content-type field is trusted.
		GetImage(ctx context.Context, id string) ([]byte, string, error)
	}

	imageService struct {
		imageRepository ImageRepository
	}
)

func NewImageService(imageRepository ImageRepository) ImageService {
	return &imageService{imageRepository: imageRepository}
}

func (s *imageService) StoreImage(ctx context.Context, data []byte) (uuid.UUID, error) {
	imageData := &entities.ImageData{
		ID:   uuid.New(),
		Data: data,
	}
	if err := s.imageRepository.Create(ctx, imageData); err != nil {
		return uuid.Nil, err
	}
	return imageData.ID, nil
}

func (s *imageService) GetImage(ctx context.Context, id string) ([]byte, string, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", domain.ErrParseUUID
	}

	imageData, err := s.imageRepository.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrImageNotFound
		}
		return nil, "", err
	}

	return imageData.Data, mimetype.Detect(imageData.Data).String(), nil
}
