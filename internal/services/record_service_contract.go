package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
)

// File slot names a record accepts in create and update requests. Each slot
// carries at most one file per request.
const (
	FileSlotLabReport    = "labReport"
	FileSlotPrescription = "prescription"
)

// UploadedFiles maps a file slot name to the single file uploaded for it.
// A missing key means no file was provided for that slot.
type UploadedFiles map[string]*multipart.FileHeader

// RecordServiceContract defines the record lifecycle operations. Every
// record-scoped operation takes the authenticated caller's id and verifies
// ownership before touching the record or its attachments.
type RecordServiceContract interface {
	// Create builds and persists a new record owned by ownerID, storing
	// any uploaded files into their attachment slots.
	Create(ctx context.Context, ownerID uuid.UUID, req dtos.CreateRecordRequest, files UploadedFiles) (*entities.Record, error)
	// List returns all records owned by ownerID, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Record, error)
	// Get returns a single record after the ownership check.
	Get(ctx context.Context, recordID, ownerID uuid.UUID) (*entities.Record, error)
	// Update applies a partial update and replaces any attachment slots
	// for which a new file was uploaded.
	Update(ctx context.Context, recordID, ownerID uuid.UUID, req dtos.UpdateRecordRequest, files UploadedFiles) (*entities.Record, error)
	// Delete removes the record and best-effort removes its attachments.
	Delete(ctx context.Context, recordID, ownerID uuid.UUID) error
	// DeleteAllForOwner removes every record owned by ownerID, attachments
	// included. Used by the account deletion cascade.
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}
