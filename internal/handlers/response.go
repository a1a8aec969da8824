package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/services"
)

// respondOK writes the uniform success envelope.
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondCreated writes a 201 success envelope with a message.
func respondCreated(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// respondMessage writes a success envelope carrying only a message.
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// respondPage writes a success envelope with pagination metadata.
func respondPage(c *fiber.Ctx, data interface{}, pagination services.Pagination) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// respondError translates an error into the error envelope. Domain errors
// keep their status and message; anything else is logged and surfaced as a
// generic 500, never leaking the underlying error text.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Status < fiber.StatusInternalServerError {
			return c.Status(appErr.Status).JSON(fiber.Map{
				"success": false,
				"error":   appErr.Message,
			})
		}
	}

	logger.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}

// respondBadBody writes the 400 envelope for unparseable request bodies.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body",
	})
}
