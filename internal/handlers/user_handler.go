package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the user routes. Fixed paths precede ":id".
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleList)
	userRoutes.Get("/counts", h.HandleListWithReviewCounts)
	userRoutes.Get("/by-email", h.HandleGetByEmail)
	userRoutes.Get("/:id", h.HandleGetByID)
	userRoutes.Post("/", h.HandleCreate)
	userRoutes.Put("/:id", h.HandleUpdate)
	userRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves all users ordered by name.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, users)
}

// HandleListWithReviewCounts retrieves users with their review counts.
func (h *UserHandler) HandleListWithReviewCounts(c *fiber.Ctx) error {
	users, err := h.service.WithReviewCounts()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, users)
}

// HandleGetByEmail looks a user up by their unique email.
func (h *UserHandler) HandleGetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Email query parameter is required",
		})
	}

	user, err := h.service.ByEmail(email)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, user)
}

// HandleGetByID retrieves a user with their reviews.
func (h *UserHandler) HandleGetByID(c *fiber.Ctx) error {
	user, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, user)
}

// HandleCreate creates a new user.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	user, err := h.service.Create(input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondCreated(c, user, "User created successfully")
}

// HandleUpdate applies a partial update to a user.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	user, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return respondOK(c, user)
}

// HandleDelete removes a user.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return respondMessage(c, "User deleted successfully")
}
