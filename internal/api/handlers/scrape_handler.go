package handlers

import (
	"Barcode-API/domain"
	"Barcode-API/internal/api/presenters"
	"Barcode-API/internal/utils/barcode"
	"Barcode-API/pkg/scraping"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ScrapeHandler interface {
		GetLatestScrapeLog(c *fiber.Ctx) error
	}

	scrapeHandler struct {
		scrapeService scraping.ScrapeService
	}
)

func NewScrapeHandler(scrapeService scraping.ScrapeService) ScrapeHandler {
	return &scrapeHandler{scrapeService: scrapeService}
}

// GetLatestScrapeLog returns the most recent raw scrape for a barcode, so
// operators can inspect what the lookup site actually served.
func (h *scrapeHandler) GetLatestScrapeLog(c *fiber.Ctx) error {
	code, err := barcode.Normalize(c.Params("barcode"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidBarcode, err)
	}

	res, err := h.scrapeService.GetLatestLog(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrScrapeLogNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedScrapeLogNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetScrapeLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScrapeLog)
}
