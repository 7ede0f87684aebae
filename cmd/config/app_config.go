package config

import (
	"Barcode-API/internal/api/handlers"
	"Barcode-API/internal/api/routes"
	"Barcode-API/internal/middleware"
	"Barcode-API/internal/utils"
	"Barcode-API/pkg/image"
	"Barcode-API/pkg/jwt"
	"Barcode-API/pkg/product"
	"Barcode-API/pkg/scraping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg *utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	productRepository := product.NewProductRepository(db)
	imageRepository := image.NewImageRepository(db)
	scrapeLogRepository := scraping.NewScrapeLogRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	imageService := image.NewImageService(imageRepository)
	scrapeService := scraping.NewScrapeService(cfg, scrapeLogRepository, scraping.NewBarcodeLookupStrategy())
	productService := product.NewProductService(productRepository, imageService, scrapeService)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	imageHandler := handlers.NewImageHandler(imageService)
	scrapeHandler := handlers.NewScrapeHandler(scrapeService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ProductHandler: productHandler,
		ImageHandler:   imageHandler,
		ScrapeHandler:  scrapeHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
