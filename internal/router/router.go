package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"gadgetstore/internal/database"
	"gadgetstore/internal/handlers"
	"gadgetstore/internal/repositories"
	"gadgetstore/internal/services"
	"gadgetstore/internal/web"
)

// New wires repositories, services and handlers around the given database
// handle and returns a ready-to-listen Fiber app.
func New(db *gorm.DB, log zerolog.Logger) *fiber.App {
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	productService := services.NewProductService(productRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo, userRepo)
	userService := services.NewUserService(userRepo)

	productHandler := handlers.NewProductHandler(productService, log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	pageHandler := web.NewPageHandler(productService, categoryService, reviewService, log)

	app := fiber.New(fiber.Config{
		Views:        web.NewEngine(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// Server-rendered storefront pages.
	pageHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		dbHealth := database.Ping(db)
		status := "ok"
		if dbHealth.Status != "healthy" {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  dbHealth,
		})
	})

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Gadget Store API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":     "/health",
				"products":   "/api/products",
				"categories": "/api/categories",
				"reviews":    "/api/reviews",
				"users":      "/api/users",
			},
		})
	})

	// Review routes first: "/products/top-rated" must not be swallowed by
	// the product handler's "/products/:id".
	reviewHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})

	return app
}
