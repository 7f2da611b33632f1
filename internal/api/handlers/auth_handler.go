package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/services"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	authService services.AuthServiceContract
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthServiceContract, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: as,
		logger:      logger,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dtos.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: could not parse request body", domain.ErrValidation))
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		h.logger.Warn("registration failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dtos.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: could not parse request body", domain.ErrValidation))
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// RegisterAuthRoutes mounts the public auth endpoints.
func RegisterAuthRoutes(app *fiber.App, h *AuthHandler) {
	group := app.Group("/api/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
}
