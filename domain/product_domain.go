package domain

import (
	"errors"
	"time"
)

const (
	ProductSourceLocal  = "local"
	ProductSourceOnline = "online"
)

var (
	MessageSuccessGetProduct     = "product retrieved successfully"
	MessageSuccessSearchProducts = "products retrieved successfully"
	MessageSuccessCreateProduct  = "product created successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"

	MessageFailedInvalidBarcode  = "invalid barcode"
	MessageFailedGetProduct      = "failed to retrieve product"
	MessageFailedSearchProducts  = "failed to search products"
	MessageFailedCreateProduct   = "failed to create product"
	MessageFailedUpdateProduct   = "failed to update product"
	MessageFailedProductNotFound = "product not found"

	ErrProductNotFound      = errors.New("product not found")
	ErrBarcodeAlreadyExists = errors.New("product with this barcode already exists")
	ErrBarcodeImmutable     = errors.New("barcode cannot be changed")
)

type (
	CreateProductRequest struct {
		Barcode      string  `json:"barcode" validate:"required,barcode"`
		Name         string  `json:"name" validate:"required,max=255"`
		Description  *string `json:"description" validate:"omitempty"`
		Manufacturer *string `json:"manufacturer" validate:"omitempty,max=255"`
	}

	// UpdateProductRequest is a patch shape: every field is independently
	// optional and only non-nil fields are applied. The barcode is accepted
	// so clients can echo it back, but it is immutable and any attempt to
	// change it is rejected.
	UpdateProductRequest struct {
		Barcode      *string `json:"barcode" validate:"omitempty,barcode"`
		Name         *string `json:"name" validate:"omitempty,max=255"`
		Description  *string `json:"description" validate:"omitempty"`
		Manufacturer *string `json:"manufacturer" validate:"omitempty,max=255"`
	}

	SearchProductRequest struct {
		Query string `query:"query" validate:"required,min=1"`
		Limit int    `query:"limit"`
	}

	ProductResponse struct {
		ID              uint      `json:"id"`
		Barcode         string    `json:"barcode"`
		Name            string    `json:"name"`
		Description     *string   `json:"description,omitempty"`
		Manufacturer    *string   `json:"manufacturer,omitempty"`
		ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
		BarcodeImageURL string    `json:"barcode_image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
