package product

import (
	"Barcode-API/domain"
	"Barcode-API/entities"
	"Barcode-API/internal/utils/barcode"
	"Barcode-API/pkg/image"
	"Barcode-API/pkg/scraping"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const imageURLPrefix = "/api/v1/image/"

type (
	ProductService interface {
		// FindOnline resolves a barcode locally first and falls back to one
		// scoped online scrape. The returned source is
		// domain.ProductSourceLocal or domain.ProductSourceOnline.
		FindOnline(ctx context.Context, rawBarcode string) (domain.ProductResponse, string, error)
		GetByBarcode(ctx context.Context, rawBarcode string) (domain.ProductResponse, error)
		Search(ctx context.Context, query string, limit int) ([]domain.ProductResponse, error)
		Create(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		Update(ctx context.Context, rawBarcode string, req domain.UpdateProductRequest) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		imageService      image.ImageService
		scrapeService     scraping.ScrapeService
	}
)

func NewProductService(
	productRepository ProductRepository,
	imageService image.ImageService,
	scrapeService scraping.ScrapeService,
) ProductService {
	return &productService{
		productRepository: productRepository,
		imageService:      imageService,
		scrapeService:     scrapeService,
	}
}

func (s *productService) GetByBarcode(ctx context.Context, rawBarcode string) (domain.ProductResponse, error) {
	code, err := barcode.Normalize(rawBarcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	product, err := s.productRepository.GetByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) FindOnline(ctx context.Context, rawBarcode string) (domain.ProductResponse, string, error) {
	code, err := barcode.Normalize(rawBarcode)
	if err != nil {
		return domain.ProductResponse{}, "", err
	}

	// A local row always wins; no network lookup happens when one exists.
	product, err := s.productRepository.GetByBarcode(ctx, code)
	if err == nil {
		return toProductResponse(product), domain.ProductSourceLocal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProductResponse{}, "", err
	}

	parsed, err := s.scrapeService.FetchProduct(ctx, code)
	if err != nil {
		// Timeouts, unreachable hosts and pages without a product are all
		// expected outcomes, reported to the caller as not-found. The session
		// already logged them distinctly.
		if errors.Is(err, domain.ErrProductNotFoundOnline) ||
			errors.Is(err, domain.ErrNavigationTimeout) ||
			errors.Is(err, domain.ErrSiteUnreachable) {
			log.Infof("online lookup yielded no product for barcode %s: %v", code, err)
			return domain.ProductResponse{}, "", domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, "", err
	}

	product, err = s.persistScrape(ctx, parsed)
	if err != nil {
		return domain.ProductResponse{}, "", err
	}
	return toProductResponse(product), domain.ProductSourceOnline, nil
}

// persistScrape materializes a ParsedProduct: the base row first, then one
// ImageData row per present image, then the row again with the references
// attached. Each step commits on its own; a crash between them leaves a
// product without images, which is an accepted trade-off.
func (s *productService) persistScrape(ctx context.Context, parsed *scraping.ParsedProduct) (*entities.Product, error) {
	product := &entities.Product{
		Barcode:      parsed.Barcode,
		Name:         parsed.Name,
		Description:  parsed.Description,
		Manufacturer: parsed.Manufacturer,
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent lookup of the same barcode won the insert race.
			// The unique constraint is the serialization point; the winner's
			// row is the answer.
			log.Infof("lost product insert race for barcode %s, reading existing row", parsed.Barcode)
			return s.productRepository.GetByBarcode(ctx, parsed.Barcode)
		}
		return nil, err
	}

	attached := false
	if len(parsed.BarcodeImage) > 0 {
		id, err := s.imageService.StoreImage(ctx, parsed.BarcodeImage)
		if err != nil {
			return nil, err
		}
		product.BarcodeImageID = &id
		attached = true
	}
	if len(parsed.Thumbnail) > 0 {
		id, err := s.imageService.StoreImage(ctx, parsed.Thumbnail)
		if err != nil {
			return nil, err
		}
		product.ThumbnailID = &id
		attached = true
	}

	if attached {
		if err := s.productRepository.Update(ctx, product); err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (s *productService) Search(ctx context.Context, query string, limit int) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses, nil
}

func (s *productService) Create(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	code, err := barcode.Normalize(req.Barcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	product := &entities.Product{
		Barcode:      code,
		Name:         req.Name,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ProductResponse{}, domain.ErrBarcodeAlreadyExists
		}
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) Update(ctx context.Context, rawBarcode string, req domain.UpdateProductRequest) (domain.ProductResponse, error) {
	code, err := barcode.Normalize(rawBarcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	// Echoing the current barcode is a no-op; any other value is rejected.
	if req.Barcode != nil {
		requested, err := barcode.Normalize(*req.Barcode)
		if err != nil || requested != code {
			return domain.ProductResponse{}, domain.ErrBarcodeImmutable
		}
	}

	product, err := s.productRepository.GetByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Manufacturer != nil {
		product.Manufacturer = req.Manufacturer
	}

	if err := s.productRepository.Update(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	res := domain.ProductResponse{
		ID:           product.ID,
		Barcode:      product.Barcode,
		Name:         product.Name,
		Description:  product.Description,
		Manufacturer: product.Manufacturer,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	if product.ThumbnailID != nil {
		res.ThumbnailURL = imageURLPrefix + product.ThumbnailID.String()
	}
	if product.BarcodeImageID != nil {
		res.BarcodeImageURL = imageURLPrefix + product.BarcodeImageID.String()
	}
	return res
}
