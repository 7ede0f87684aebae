package handlers

import (
	"Barcode-API/domain"
	"Barcode-API/internal/api/presenters"
	"Barcode-API/internal/utils/barcode"
	"Barcode-API/pkg/product"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	headerSource       = "X-Source"
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type (
	ProductHandler interface {
		GetProduct(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
		CreateProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

// GetProduct resolves a barcode, falling back to the online lookup when no
// local row exists. The X-Source header reports which path answered.
func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	rawBarcode := c.Params("barcode")

	// Format gate: invalid input is rejected before any lookup.
	code, err := barcode.Normalize(rawBarcode)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidBarcode, err)
	}

	res, source, err := h.productService.FindOnline(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProductNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProduct, err)
	}

	c.Set(headerSource, source)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

// SearchProducts never triggers the online fallback.
func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	req := new(domain.SearchProductRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, err)
	}

	if req.Limit < 1 {
		req.Limit = defaultSearchLimit
	}
	if req.Limit > maxSearchLimit {
		req.Limit = maxSearchLimit
	}

	res, err := h.productService.Search(c.Context(), req.Query, req.Limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearchProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": res,
		"count": len(res),
	}, fiber.StatusOK, domain.MessageSuccessSearchProducts)
}

// CreateProduct is the direct, out-of-band creation path for admin tooling.
func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.CreateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.Create(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrBarcodeAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

// UpdateProduct patches non-barcode fields; the barcode itself is immutable.
func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	rawBarcode := c.Params("barcode")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	code, err := barcode.Normalize(rawBarcode)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidBarcode, err)
	}

	res, err := h.productService.Update(c.Context(), code, *req)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProductNotFound, err)
		}
		if errors.Is(err, domain.ErrBarcodeImmutable) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}
