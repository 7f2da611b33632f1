package dtos

// CreateRecordRequest defines the payload for creating a new record. It is
// submitted as multipart form fields alongside the optional file parts
// (labReport, prescription). Vitals arrives as a JSON-encoded string.
type CreateRecordRequest struct {
	Title          string `form:"title" json:"title" validate:"required"`
	MedicalHistory string `form:"medicalHistory" json:"medicalHistory"`
	DoctorNotes    string `form:"doctorNotes" json:"doctorNotes"`
	Vitals         string `form:"vitals" json:"vitals" validate:"omitempty,json"`
}
