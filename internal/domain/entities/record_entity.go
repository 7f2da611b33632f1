package entities

import (
	"time"

	"github.com/google/uuid"
)

// Vitals holds the structured measurements of a record. All fields are
// free-text and optional; the struct itself is always present on a Record,
// possibly all-empty.
type Vitals struct {
	BloodPressure string `json:"bloodPressure,omitempty"`
	HeartRate     string `json:"heartRate,omitempty"`
	BloodSugar    string `json:"bloodSugar,omitempty"`
	Weight        string `json:"weight,omitempty"`
	Height        string `json:"height,omitempty"`
}

// RecordFiles holds the attachment references of a record. Each slot is
// either empty or a retrievable path string pointing into the attachment
// store. A slot references at most one stored binary at a time.
type RecordFiles struct {
	LabReport    string `json:"labReport"`
	Prescription string `json:"prescription"`
}

// Record represents a single medical record entry owned by exactly one user.
// Vitals and Files are stored as JSON columns.
type Record struct {
	ID             uuid.UUID   `json:"id" db:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID        uuid.UUID   `json:"owner_id" db:"owner_id" gorm:"type:uuid;not null;index"`
	Title          string      `json:"title" db:"title" gorm:"not null"`
	MedicalHistory string      `json:"medical_history" db:"medical_history" gorm:"type:text"`
	DoctorNotes    string      `json:"doctor_notes" db:"doctor_notes" gorm:"type:text"`
	Vitals         Vitals      `json:"vitals" db:"vitals" gorm:"type:jsonb;serializer:json"`
	Files          RecordFiles `json:"files" db:"files" gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at" gorm:"not null"` // gorm will default to autoCreateTime
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at" gorm:"not null"` // gorm will default to autoUpdateTime
}
