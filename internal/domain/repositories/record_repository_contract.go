package repositories

import (
	"context"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/entities"
)

// RecordRepositoryContract defines the interface for record data operations.
type RecordRepositoryContract interface {
	Create(ctx context.Context, record *entities.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Record, error)
	Update(ctx context.Context, record *entities.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByOwnerID returns all records owned by ownerID, newest first.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error)
	// DeleteByOwnerID removes every record owned by ownerID. Used by the
	// account deletion cascade.
	DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error
}
