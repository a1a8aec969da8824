package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the product routes. The fixed paths must come
// before the ":id" wildcard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/search", h.HandleSearch)
	productRoutes.Get("/low-stock", h.HandleLowStock)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Patch("/:id/stock", h.HandleUpdateStock)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves a paginated product listing, optionally filtered by
// category and a case-insensitive search term.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	opts := services.ProductListOptions{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}

	products, pagination, err := h.service.List(opts)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondPage(c, products, pagination)
}

// HandleGetByID retrieves a single product with category and reviews.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, product)
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	product, err := h.service.Create(input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondCreated(c, product, "Product created successfully")
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	product, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Product updated successfully",
	})
}

// HandleUpdateStock sets the stock level of a product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	var input struct {
		Stock *int `json:"stock"`
	}
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}
	if input.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Stock is required",
		})
	}

	product, err := h.service.UpdateStock(c.Params("id"), *input.Stock)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, product)
}

// HandleDelete soft-deletes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return respondMessage(c, "Product deleted successfully")
}

// HandleSearch finds active products by name or description.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	products, err := h.service.Search(c.Query("q"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, products)
}

// HandleLowStock lists active products at or below a stock threshold.
func (h *ProductHandler) HandleLowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock(c.QueryInt("threshold", 0))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, products)
}
