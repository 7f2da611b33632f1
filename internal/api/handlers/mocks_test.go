package handlers

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/services"
)

var (
	_ services.RecordServiceContract = (*StubRecordService)(nil)
	_ services.AuthServiceContract   = (*StubAuthService)(nil)
	_ services.UserServiceContract   = (*StubUserService)(nil)
)

// StubRecordService is a function-field stub of RecordServiceContract.
type StubRecordService struct {
	CreateFunc            func(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files services.UploadedFiles) (*entities.Record, error)
	ListFunc              func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error)
	GetFunc               func(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error)
	UpdateFunc            func(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files services.UploadedFiles) (*entities.Record, error)
	DeleteFunc            func(ctx context.Context, recordID, ownerID uuid.UUID) error
	DeleteAllForOwnerFunc func(ctx context.Context, ownerID uuid.UUID) error
}

func (s *StubRecordService) Create(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files services.UploadedFiles) (*entities.Record, error) {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, ownerID, req, files)
	}
	return nil, errors.New("CreateFunc not implemented in stub")
}

func (s *StubRecordService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (s *StubRecordService) Get(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, recordID, ownerID)
	}
	return nil, errors.New("GetFunc not implemented in stub")
}

func (s *StubRecordService) Update(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files services.UploadedFiles) (*entities.Record, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, recordID, ownerID, req, files)
	}
	return nil, errors.New("UpdateFunc not implemented in stub")
}

func (s *StubRecordService) Delete(ctx context.Context, recordID, ownerID uuid.UUID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, recordID, ownerID)
	}
	return nil
}

func (s *StubRecordService) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	if s.DeleteAllForOwnerFunc != nil {
		return s.DeleteAllForOwnerFunc(ctx, ownerID)
	}
	return nil
}

// StubAuthService is a function-field stub of AuthServiceContract.
type StubAuthService struct {
	RegisterFunc    func(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error)
	LoginFunc       func(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error)
	VerifyTokenFunc func(token string) (uuid.UUID, error)
}

func (s *StubAuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	if s.RegisterFunc != nil {
		return s.RegisterFunc(ctx, req)
	}
	return nil, errors.New("RegisterFunc not implemented in stub")
}

func (s *StubAuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in stub")
}

func (s *StubAuthService) VerifyToken(token string) (uuid.UUID, error) {
	if s.VerifyTokenFunc != nil {
		return s.VerifyTokenFunc(token)
	}
	return uuid.Nil, errors.New("VerifyTokenFunc not implemented in stub")
}

// StubUserService is a function-field stub of UserServiceContract.
type StubUserService struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	UpdateFunc func(ctx context.Context, userID uuid.UUID, req dtos.UpdateUserRequest, picture *multipart.FileHeader) (*entities.User, error)
	DeleteFunc func(ctx context.Context, userID uuid.UUID) error
}

func (s *StubUserService) Get(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, userID)
	}
	return nil, errors.New("GetFunc not implemented in stub")
}

func (s *StubUserService) Update(ctx context.Context, userID uuid.UUID, req dtos.UpdateUserRequest, picture *multipart.FileHeader) (*entities.User, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, userID, req, picture)
	}
	return nil, errors.New("UpdateFunc not implemented in stub")
}

func (s *StubUserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if s.DeleteFunc != nil {
		return s.DeleteFunc(ctx, userID)
	}
	return nil
}
