package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"healthvault-api/internal/services"
)

// localUserID is the fiber.Locals key the authenticated caller id is stored
// under.
const localUserID = "user_id"

// AuthMiddleware turns a bearer token into an authenticated caller identity.
type AuthMiddleware struct {
	auth services.AuthServiceContract
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth services.AuthServiceContract) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth rejects requests without a valid token and stores the caller
// id in the request locals for handlers to pick up via CallerID.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization token required",
			})
		}

		userID, err := m.auth.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(localUserID, userID)
		return c.Next()
	}
}

// CallerID returns the authenticated caller id stored by RequireAuth.
func CallerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localUserID).(uuid.UUID)
	return id, ok
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
