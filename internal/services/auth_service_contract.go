package services

import (
	"context"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/dtos"
)

// AuthServiceContract defines account registration, login, and token
// verification. VerifyToken is what the HTTP middleware consumes to turn a
// bearer token into a caller identity.
type AuthServiceContract interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error)
	VerifyToken(token string) (uuid.UUID, error)
}
