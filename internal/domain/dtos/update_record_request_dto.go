package dtos

// UpdateRecordRequest defines the payload for updating an existing record.
// Every field is a pointer so "absent from the request" and "explicitly set
// to empty" stay distinguishable: a nil field leaves the stored value
// untouched, a non-nil empty string overwrites it. Vitals, when present,
// replaces the stored structure wholesale.
type UpdateRecordRequest struct {
	Title          *string `form:"title" json:"title,omitempty"`
	MedicalHistory *string `form:"medicalHistory" json:"medicalHistory,omitempty"`
	DoctorNotes    *string `form:"doctorNotes" json:"doctorNotes,omitempty"`
	Vitals         *string `form:"vitals" json:"vitals,omitempty" validate:"omitempty,json"`
}
