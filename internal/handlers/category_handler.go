package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Get("/counts", h.HandleListWithCounts)
	categoryRoutes.Get("/:id", h.HandleGetByID)
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Put("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all categories ordered by name.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, categories)
}

// HandleListWithCounts retrieves categories with active product counts.
func (h *CategoryHandler) HandleListWithCounts(c *fiber.Ctx) error {
	categories, err := h.service.ListWithProductCounts()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, categories)
}

// HandleGetByID retrieves a category with its active products.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	category, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, category)
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	category, err := h.service.Create(input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondCreated(c, category, "Category created successfully")
}

// HandleUpdate applies a partial update to a category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.CategoryUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	category, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, category)
}

// HandleDelete removes a category; populated categories yield a conflict.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return respondMessage(c, "Category deleted successfully")
}
