package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/domain/repositories"
	"healthvault-api/internal/storage"
)

var _ RecordServiceContract = (*RecordServiceImpl)(nil)

// RecordServiceImpl implements RecordServiceContract. It orchestrates the
// record lifecycle: ownership enforcement, partial-update merging, and
// attachment replacement and cleanup against the attachment store.
type RecordServiceImpl struct {
	recordRepo repositories.RecordRepositoryContract
	store      storage.AttachmentStoreContract
	logger     *slog.Logger
}

// NewRecordService creates a new instance of RecordServiceImpl.
func NewRecordService(
	recordRepo repositories.RecordRepositoryContract,
	store storage.AttachmentStoreContract,
	logger *slog.Logger,
) RecordServiceContract {
	return &RecordServiceImpl{
		recordRepo: recordRepo,
		store:      store,
		logger:     logger,
	}
}

func (s *RecordServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files UploadedFiles) (*entities.Record, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	// Validation precedes any file write so a malformed request never
	// leaves stored binaries behind.
	vitals, err := parseVitals(req.Vitals)
	if err != nil {
		return nil, err
	}

	record := &entities.Record{
		OwnerID:        ownerID,
		Title:          req.Title,
		MedicalHistory: req.MedicalHistory,
		DoctorNotes:    req.DoctorNotes,
		Vitals:         vitals,
	}

	if fh := files[FileSlotLabReport]; fh != nil {
		ref, err := s.store.Store(ctx, storage.CategoryRecords, fh)
		if err != nil {
			return nil, err
		}
		record.Files.LabReport = ref
	}
	if fh := files[FileSlotPrescription]; fh != nil {
		ref, err := s.store.Store(ctx, storage.CategoryRecords, fh)
		if err != nil {
			return nil, err
		}
		record.Files.Prescription = ref
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("record created", "record_id", record.ID, "owner_id", ownerID)
	return record, nil
}

func (s *RecordServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error) {
	return s.recordRepo.FindByOwnerID(ctx, ownerID)
}

func (s *RecordServiceImpl) Get(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error) {
	return s.loadOwned(ctx, recordID, ownerID)
}

func (s *RecordServiceImpl) Update(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files UploadedFiles) (*entities.Record, error) {
	record, err := s.loadOwned(ctx, recordID, ownerID)
	if err != nil {
		return nil, err
	}

	// Parse vitals before mutating anything so a malformed payload leaves
	// both the record and the attachment store untouched.
	var vitals entities.Vitals
	if req.Vitals != nil {
		vitals, err = parseVitals(*req.Vitals)
		if err != nil {
			return nil, err
		}
	}

	// Partial-update semantics: a nil field was absent from the request
	// and keeps its stored value; a non-nil empty string overwrites.
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.MedicalHistory != nil {
		record.MedicalHistory = *req.MedicalHistory
	}
	if req.DoctorNotes != nil {
		record.DoctorNotes = *req.DoctorNotes
	}
	if req.Vitals != nil {
		// Wholesale replacement, not a field-level merge.
		record.Vitals = vitals
	}

	if fh := files[FileSlotLabReport]; fh != nil {
		s.removeAttachment(ctx, record.Files.LabReport, FileSlotLabReport)
		ref, err := s.store.Store(ctx, storage.CategoryRecords, fh)
		if err != nil {
			return nil, err
		}
		record.Files.LabReport = ref
	}
	if fh := files[FileSlotPrescription]; fh != nil {
		s.removeAttachment(ctx, record.Files.Prescription, FileSlotPrescription)
		ref, err := s.store.Store(ctx, storage.CategoryRecords, fh)
		if err != nil {
			return nil, err
		}
		record.Files.Prescription = ref
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("record updated", "record_id", record.ID, "owner_id", ownerID)
	return record, nil
}

func (s *RecordServiceImpl) Delete(ctx context.Context, recordID, ownerID uuid.UUID) error {
	record, err := s.loadOwned(ctx, recordID, ownerID)
	if err != nil {
		return err
	}

	s.removeAttachment(ctx, record.Files.LabReport, FileSlotLabReport)
	s.removeAttachment(ctx, record.Files.Prescription, FileSlotPrescription)

	if err := s.recordRepo.Delete(ctx, recordID); err != nil {
		return err
	}

	s.logger.Info("record deleted", "record_id", recordID, "owner_id", ownerID)
	return nil
}

func (s *RecordServiceImpl) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	records, err := s.recordRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return err
	}

	for _, record := range records {
		s.removeAttachment(ctx, record.Files.LabReport, FileSlotLabReport)
		s.removeAttachment(ctx, record.Files.Prescription, FileSlotPrescription)
	}

	if err := s.recordRepo.DeleteByOwnerID(ctx, ownerID); err != nil {
		return err
	}

	s.logger.Info("records deleted for owner", "owner_id", ownerID, "count", len(records))
	return nil
}

// loadOwned fetches a record and enforces the ownership check. The check
// must precede every mutation so an unauthorized caller can never trigger a
// file write or delete. An owner mismatch is reported as unauthorized, not
// as not-found.
func (s *RecordServiceImpl) loadOwned(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: record %s is not owned by caller", domain.ErrUnauthorized, recordID)
	}
	return record, nil
}

// removeAttachment deletes a stored binary best-effort. Failing the whole
// operation over a stale file is worse than leaving an orphan, so errors
// are logged and swallowed.
func (s *RecordServiceImpl) removeAttachment(ctx context.Context, reference, slot string) {
	if reference == "" {
		return
	}
	if err := s.store.Remove(ctx, reference); err != nil {
		s.logger.Warn("failed to remove attachment", "slot", slot, "reference", reference, "error", err)
	}
}

// parseVitals decodes a JSON-encoded vitals payload. An empty payload yields
// the zero structure.
func parseVitals(raw string) (entities.Vitals, error) {
	var v entities.Vitals
	if strings.TrimSpace(raw) == "" {
		return v, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("%w: vitals is not valid JSON: %v", domain.ErrValidation, err)
	}
	return v, nil
}
