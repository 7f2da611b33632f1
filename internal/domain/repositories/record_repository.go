package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/entities"
)

// Compile-time check that GormRecordRepository satisfies the contract.
var _ RecordRepositoryContract = (*GormRecordRepository)(nil)

// GormRecordRepository implements RecordRepositoryContract on top of GORM.
type GormRecordRepository struct {
	db *gorm.DB
}

// NewGormRecordRepository creates a new GormRecordRepository.
func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

func (r *GormRecordRepository) Create(ctx context.Context, record *entities.Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%w: creating record: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *GormRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Record, error) {
	var record entities.Record
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: record %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: loading record %s: %v", domain.ErrStorage, id, err)
	}
	return &record, nil
}

func (r *GormRecordRepository) Update(ctx context.Context, record *entities.Record) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("%w: saving record %s: %v", domain.ErrStorage, record.ID, err)
	}
	return nil
}

func (r *GormRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entities.Record{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: deleting record %s: %v", domain.ErrStorage, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: record %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormRecordRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error) {
	var records []*entities.Record
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing records for owner %s: %v", domain.ErrStorage, ownerID, err)
	}
	return records, nil
}

func (r *GormRecordRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&entities.Record{}, "owner_id = ?", ownerID).Error
	if err != nil {
		return fmt.Errorf("%w: deleting records for owner %s: %v", domain.ErrStorage, ownerID, err)
	}
	return nil
}
