package handlers

import (
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"healthvault-api/internal/api/middleware"
	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/services"
)

// UserHandler exposes profile operations on the authenticated account.
type UserHandler struct {
	userService services.UserServiceContract
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserServiceContract, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: us,
		logger:      logger,
	}
}

// GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}

	user, err := h.userService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dtos.NewUserDTO(user))
}

// PUT /api/users/me
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}

	var req dtos.UpdateUserRequest
	var picture *multipart.FileHeader

	form, err := c.MultipartForm()
	if err == nil {
		req.Name = formValue(form, "name")
		req.Password = formValue(form, "password")
		if fh, err := c.FormFile("profilePicture"); err == nil && fh != nil {
			picture = fh
		}
	} else if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrValidation)
	}

	user, err := h.userService.Update(c.Context(), userID, req, picture)
	if err != nil {
		h.logger.Warn("profile update failed", "user_id", userID, "error", err)
		return respondError(c, err)
	}

	return c.JSON(dtos.NewUserDTO(user))
}

// DELETE /api/users/me
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}

	if err := h.userService.Delete(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterUserRoutes mounts the profile endpoints behind the auth
// middleware.
func RegisterUserRoutes(app *fiber.App, h *UserHandler, auth *middleware.AuthMiddleware) {
	group := app.Group("/api/users", auth.RequireAuth())
	group.Get("/me", h.Me)
	group.Put("/me", h.UpdateMe)
	group.Delete("/me", h.DeleteMe)
}
