package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"healthvault-api/internal/domain"
)

// respondError maps a service error to its HTTP status. Client errors keep
// their message; server-side failures get a generic payload so internal
// paths and driver detail never leak.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	default:
		status = fiber.StatusInternalServerError
	}

	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
