package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/services"
)

const mainLayout = "views/layout"

// PageHandler serves the server-rendered storefront pages. Pages call the
// services directly rather than going through the REST API.
type PageHandler struct {
	products   *services.ProductService
	categories *services.CategoryService
	reviews    *services.ReviewService
	logger     zerolog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(products *services.ProductService, categories *services.CategoryService, reviews *services.ReviewService, logger zerolog.Logger) *PageHandler {
	return &PageHandler{
		products:   products,
		categories: categories,
		reviews:    reviews,
		logger:     logger,
	}
}

// RegisterRoutes registers the storefront page routes.
func (h *PageHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleHome)
	app.Get("/products", h.HandleProducts)
	app.Get("/categories", h.HandleCategories)
}

// HandleHome renders the landing page: a handful of recent products, the
// top-rated shelf and the category list.
func (h *PageHandler) HandleHome(c *fiber.Ctx) error {
	featured, _, err := h.products.List(services.ProductListOptions{Page: 1, Limit: 6})
	if err != nil {
		return h.renderError(c, "Failed to load products", err)
	}
	topRated, err := h.reviews.TopRatedProducts(3)
	if err != nil {
		return h.renderError(c, "Failed to load top rated products", err)
	}
	categories, err := h.categories.List()
	if err != nil {
		return h.renderError(c, "Failed to load categories", err)
	}

	return c.Render("views/home", fiber.Map{
		"Title":      "Gadget Store",
		"Featured":   featured,
		"TopRated":   topRated,
		"Categories": categories,
	}, mainLayout)
}

// HandleProducts renders the paginated product grid with category and
// search filters.
func (h *PageHandler) HandleProducts(c *fiber.Ctx) error {
	opts := services.ProductListOptions{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 12),
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
	}

	products, pagination, err := h.products.List(opts)
	if err != nil {
		return h.renderError(c, "Failed to load products", err)
	}

	return c.Render("views/products", fiber.Map{
		"Title":      "Products - Gadget Store",
		"Products":   products,
		"Pagination": pagination,
		"Search":     opts.Search,
		"HasPrev":    pagination.Page > 1,
		"HasNext":    pagination.Page < pagination.TotalPages,
		"PrevPage":   pagination.Page - 1,
		"NextPage":   pagination.Page + 1,
	}, mainLayout)
}

// HandleCategories renders the category cards with product counts.
func (h *PageHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListWithProductCounts()
	if err != nil {
		return h.renderError(c, "Failed to load categories", err)
	}

	return c.Render("views/categories", fiber.Map{
		"Title":      "Categories - Gadget Store",
		"Categories": categories,
	}, mainLayout)
}

func (h *PageHandler) renderError(c *fiber.Ctx, message string, err error) error {
	h.logger.Error().Err(err).Str("path", c.Path()).Msg("page render failed")
	return c.Status(fiber.StatusInternalServerError).Render("views/error", fiber.Map{
		"Title":   "Error - Gadget Store",
		"Message": message,
	}, mainLayout)
}
