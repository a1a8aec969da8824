package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/services"
)

// ReviewHandler handles HTTP requests for reviews and the review-derived
// product rankings.
type ReviewHandler struct {
	service *services.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the review routes. The product-scoped routes are
// registered here because they are review aggregates; "/products/top-rated"
// must be mounted before the product handler's "/products/:id".
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleList)
	reviewRoutes.Get("/recent", h.HandleRecent)
	reviewRoutes.Get("/:id", h.HandleGetByID)
	reviewRoutes.Post("/", h.HandleCreate)
	reviewRoutes.Put("/:id", h.HandleUpdate)
	reviewRoutes.Delete("/:id", h.HandleDelete)

	router.Get("/products/top-rated", h.HandleTopRated)
	router.Get("/products/:id/reviews", h.HandleByProduct)
	router.Get("/products/:id/rating", h.HandleAverageRating)
	router.Get("/users/:id/reviews", h.HandleByUser)
}

// HandleList retrieves all reviews, newest first.
func (h *ReviewHandler) HandleList(c *fiber.Ctx) error {
	reviews, err := h.service.List()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, reviews)
}

// HandleRecent retrieves the most recent reviews.
func (h *ReviewHandler) HandleRecent(c *fiber.Ctx) error {
	reviews, err := h.service.Recent(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, reviews)
}

// HandleGetByID retrieves a single review.
func (h *ReviewHandler) HandleGetByID(c *fiber.Ctx) error {
	review, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, review)
}

// HandleCreate creates a new review.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	review, err := h.service.Create(input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondCreated(c, review, "Review created successfully")
}

// HandleUpdate applies a partial update to a review.
func (h *ReviewHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.ReviewUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	review, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, review)
}

// HandleDelete removes a review.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return respondMessage(c, "Review deleted successfully")
}

// HandleByProduct retrieves all reviews for a product.
func (h *ReviewHandler) HandleByProduct(c *fiber.Ctx) error {
	reviews, err := h.service.ByProduct(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, reviews)
}

// HandleByUser retrieves all reviews left by a user.
func (h *ReviewHandler) HandleByUser(c *fiber.Ctx) error {
	reviews, err := h.service.ByUser(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, reviews)
}

// HandleAverageRating retrieves the rating aggregate for a product.
func (h *ReviewHandler) HandleAverageRating(c *fiber.Ctx) error {
	summary, err := h.service.AverageRating(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, summary)
}

// HandleTopRated retrieves the highest-rated active products.
func (h *ReviewHandler) HandleTopRated(c *fiber.Ctx) error {
	products, err := h.service.TopRatedProducts(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, products)
}
