package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
)

// UserServiceContract defines profile operations on the authenticated
// account. Delete cascades to every record the account owns.
type UserServiceContract interface {
	Get(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateUserRequest, picture *multipart.FileHeader) (*entities.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
