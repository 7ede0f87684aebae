package scraping

import (
	"Barcode-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// ScrapeLogRepository is the append-only store of raw scrape attempts.
	// Rows are never updated or deleted.
	ScrapeLogRepository interface {
		Create(ctx context.Context, scrapeLog *entities.ScrapeLog) error
		GetLatestByBarcode(ctx context.Context, barcode string) (*entities.ScrapeLog, error)
	}

	scrapeLogRepository struct {
		db *gorm.DB
	}
)

func NewScrapeLogRepository(db *gorm.DB) ScrapeLogRepository {
	return &scrapeLogRepository{db: db}
}

func (r *scrapeLogRepository) Create(ctx context.Context, scrapeLog *entities.ScrapeLog) error {
	return r.db.WithContext(ctx).Create(scrapeLog).Error
}

func (r *scrapeLogRepository) GetLatestByBarcode(ctx context.Context, barcode string) (*entities.ScrapeLog, error) {
	var scrapeLog entities.ScrapeLog
	if err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		Order("created_at desc").
		First(&scrapeLog).Error; err != nil {
		return nil, err
	}
	return &scrapeLog, nil
}
