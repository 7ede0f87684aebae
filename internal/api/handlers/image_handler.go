package handlers

import (
	"Barcode-API/domain"
	"Barcode-API/internal/api/presenters"
	"Barcode-API/pkg/image"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ImageHandler interface {
		GetImage(c *fiber.Ctx) error
	}

	imageHandler struct {
		imageService image.ImageService
	}
)

func NewImageHandler(imageService image.ImageService) ImageHandler {
	return &imageHandler{imageService: imageService}
}

// GetImage serves the raw stored bytes; the content type is sniffed from the
// bytes themselves.
func (h *imageHandler) GetImage(c *fiber.Ctx) error {
	id := c.Params("id")

	data, contentType, err := h.imageService.GetImage(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetImage, err)
		}
		if errors.Is(err, domain.ErrImageNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedImageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetImage, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}
