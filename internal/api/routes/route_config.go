package routes

import (
	"Barcode-API/domain"
	"Barcode-API/internal/api/handlers"
	"Barcode-API/internal/middleware"
	"Barcode-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ProductHandler handlers.ProductHandler
	ImageHandler   handlers.ImageHandler
	ScrapeHandler  handlers.ScrapeHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.Images()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Get("/search", c.ProductHandler.SearchProducts)
		products.Get("/:barcode", c.ProductHandler.GetProduct)
	}
}

func (c *Config) Images() {
	c.App.Get("/api/v1/image/:id", c.ImageHandler.GetImage)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyAllow(domain.RoleAdmin),
	)
	{
		admin.Post("/products", c.ProductHandler.CreateProduct)
		admin.Patch("/products/:barcode", c.ProductHandler.UpdateProduct)
		admin.Get("/scrapes/:barcode", c.ScrapeHandler.GetLatestScrapeLog)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
