package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/domain/repositories"
	"healthvault-api/internal/storage"
)

var _ UserServiceContract = (*UserServiceImpl)(nil)

// UserServiceImpl implements UserServiceContract. Profile pictures follow
// the same replacement discipline as record attachments: the previous
// binary is removed best-effort before the new one is stored.
type UserServiceImpl struct {
	userRepo repositories.UserRepositoryContract
	records  RecordServiceContract
	store    storage.AttachmentStoreContract
	logger   *slog.Logger
}

// NewUserService creates a new instance of UserServiceImpl.
func NewUserService(
	userRepo repositories.UserRepositoryContract,
	records RecordServiceContract,
	store storage.AttachmentStoreContract,
	logger *slog.Logger,
) UserServiceContract {
	return &UserServiceImpl{
		userRepo: userRepo,
		records:  records,
		store:    store,
		logger:   logger,
	}
}

func (s *UserServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserServiceImpl) Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateUserRequest, picture *multipart.FileHeader) (*entities.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		user.Name = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%w: hashing password: %v", domain.ErrStorage, err)
		}
		user.PasswordHash = string(hash)
	}

	if picture != nil {
		if user.ProfilePicture != "" {
			if err := s.store.Remove(ctx, user.ProfilePicture); err != nil {
				s.logger.Warn("failed to remove previous profile picture", "user_id", userID, "error", err)
			}
		}
		ref, err := s.store.Store(ctx, storage.CategoryProfile, picture)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = ref
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", "user_id", userID)
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Cascade: owned records and their attachments go first.
	if err := s.records.DeleteAllForOwner(ctx, userID); err != nil {
		return err
	}

	if user.ProfilePicture != "" {
		if err := s.store.Remove(ctx, user.ProfilePicture); err != nil {
			s.logger.Warn("failed to remove profile picture", "user_id", userID, "error", err)
		}
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user account deleted", "user_id", userID)
	return nil
}
