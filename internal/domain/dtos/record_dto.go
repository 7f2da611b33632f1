package dtos

import (
	"time"

	"github.com/google/uuid"

	"healthvault-api/internal/domain/entities"
)

// RecordDTO represents record data in API responses.
type RecordDTO struct {
	ID             uuid.UUID            `json:"id"`
	OwnerID        uuid.UUID            `json:"ownerId"`
	Title          string               `json:"title"`
	MedicalHistory string               `json:"medicalHistory"`
	DoctorNotes    string               `json:"doctorNotes"`
	Vitals         entities.Vitals      `json:"vitals"`
	Files          entities.RecordFiles `json:"files"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// NewRecordDTO maps a Record entity to its API representation.
func NewRecordDTO(r *entities.Record) RecordDTO {
	return RecordDTO{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		Title:          r.Title,
		MedicalHistory: r.MedicalHistory,
		DoctorNotes:    r.DoctorNotes,
		Vitals:         r.Vitals,
		Files:          r.Files,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// NewRecordDTOs maps a slice of Record entities, returning an empty slice
// (never nil) so JSON encodes [] rather than null.
func NewRecordDTOs(records []*entities.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecordDTO(r))
	}
	return out
}
