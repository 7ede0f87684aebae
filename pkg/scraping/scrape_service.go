package scraping

import (
	"Barcode-API/domain"
	"Barcode-API/internal/utils"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ScrapeService interface {
		// FetchProduct performs one full online lookup for barcode inside a
		// scoped browser session.
		FetchProduct(ctx context.Context, barcode string) (*ParsedProduct, error)
		GetLatestLog(ctx context.Context, barcode string) (domain.ScrapeLogResponse, error)
	}

	scrapeService struct {
		cfg        *utils.Config
		scrapeLogs ScrapeLogRepository
		strategy   ScrapeStrategy
	}
)

func NewScrapeService(cfg *utils.Config, scrapeLogs ScrapeLogRepository, strategy ScrapeStrategy) ScrapeService {
	return &scrapeService{
		cfg:        cfg,
		scrapeLogs: scrapeLogs,
		strategy:   strategy,
	}
}

func (s *scrapeService) FetchProduct(ctx context.Context, barcode string) (*ParsedProduct, error) {
	session := NewScrapeSession(s.cfg, s.scrapeLogs, s.strategy)

	var parsed *ParsedProduct
	err := WithSession(ctx, session, func(session *ScrapeSession) error {
		result, err := session.Scrape(ctx, barcode)
		if err != nil {
			return err
		}
		parsed = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (s *scrapeService) GetLatestLog(ctx context.Context, barcode string) (domain.ScrapeLogResponse, error) {
	scrapeLog, err := s.scrapeLogs.GetLatestByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScrapeLogResponse{}, domain.ErrScrapeLogNotFound
		}
		return domain.ScrapeLogResponse{}, err
	}

	return domain.ScrapeLogResponse{
		ID:        scrapeLog.ID,
		Barcode:   scrapeLog.Barcode,
		URL:       scrapeLog.URL,
		HTML:      scrapeLog.HTML,
		CreatedAt: scrapeLog.CreatedAt,
	}, nil
}
