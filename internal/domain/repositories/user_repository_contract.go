package repositories

import (
	"context"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/entities"
)

// UserRepositoryContract defines the interface for account data operations.
type UserRepositoryContract interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
