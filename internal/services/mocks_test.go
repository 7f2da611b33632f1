package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync/atomic"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/domain/repositories"
	"healthvault-api/internal/storage"
)

// Compile-time checks that the mocks implement the contracts they stand for.
var (
	_ repositories.RecordRepositoryContract = (*MockRecordRepository)(nil)
	_ repositories.UserRepositoryContract   = (*MockUserRepository)(nil)
	_ storage.AttachmentStoreContract       = (*MockAttachmentStore)(nil)
	_ RecordServiceContract                 = (*MockRecordService)(nil)
)

// MockRecordRepository is a mock implementation of RecordRepositoryContract.
type MockRecordRepository struct {
	CreateFunc          func(ctx context.Context, record *entities.Record) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*entities.Record, error)
	UpdateFunc          func(ctx context.Context, record *entities.Record) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FindByOwnerIDFunc   func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error)
	DeleteByOwnerIDFunc func(ctx context.Context, ownerID uuid.UUID) error

	CreateCallCount          int32
	UpdateCallCount          int32
	DeleteCallCount          int32
	DeleteByOwnerIDCallCount int32
}

func (m *MockRecordRepository) Create(ctx context.Context, record *entities.Record) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockRecordRepository) Update(ctx context.Context, record *entities.Record) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record)
	}
	return nil
}

func (m *MockRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockRecordRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockRecordRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	atomic.AddInt32(&m.DeleteByOwnerIDCallCount, 1)
	if m.DeleteByOwnerIDFunc != nil {
		return m.DeleteByOwnerIDFunc(ctx, ownerID)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepositoryContract.
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *entities.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*entities.User, error)
	UpdateFunc     func(ctx context.Context, user *entities.User) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	DeleteCallCount int32
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAttachmentStore is a mock implementation of AttachmentStoreContract.
// It records every stored and removed reference so tests can assert on the
// attachment lifecycle.
type MockAttachmentStore struct {
	StoreFunc  func(ctx context.Context, category storage.Category, file *multipart.FileHeader) (string, error)
	RemoveFunc func(ctx context.Context, reference string) error

	Stored  []string
	Removed []string
}

func (m *MockAttachmentStore) Store(ctx context.Context, category storage.Category, file *multipart.FileHeader) (string, error) {
	if m.StoreFunc != nil {
		ref, err := m.StoreFunc(ctx, category, file)
		if err == nil {
			m.Stored = append(m.Stored, ref)
		}
		return ref, err
	}
	ref := "/uploads/" + string(category) + "/" + uuid.New().String()
	m.Stored = append(m.Stored, ref)
	return ref, nil
}

func (m *MockAttachmentStore) Remove(ctx context.Context, reference string) error {
	m.Removed = append(m.Removed, reference)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, reference)
	}
	return nil
}

// MockRecordService is a mock implementation of RecordServiceContract used
// by the user service tests.
type MockRecordService struct {
	CreateFunc            func(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files UploadedFiles) (*entities.Record, error)
	ListFunc              func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error)
	GetFunc               func(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error)
	UpdateFunc            func(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files UploadedFiles) (*entities.Record, error)
	DeleteFunc            func(ctx context.Context, recordID, ownerID uuid.UUID) error
	DeleteAllForOwnerFunc func(ctx context.Context, ownerID uuid.UUID) error

	DeleteAllForOwnerCallCount int32
}

func (m *MockRecordService) Create(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files UploadedFiles) (*entities.Record, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, req, files)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *MockRecordService) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockRecordService) Get(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, recordID, ownerID)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockRecordService) Update(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files UploadedFiles) (*entities.Record, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, recordID, ownerID, req, files)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *MockRecordService) Delete(ctx context.Context, recordID, ownerID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, recordID, ownerID)
	}
	return nil
}

func (m *MockRecordService) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	atomic.AddInt32(&m.DeleteAllForOwnerCallCount, 1)
	if m.DeleteAllForOwnerFunc != nil {
		return m.DeleteAllForOwnerFunc(ctx, ownerID)
	}
	return nil
}
