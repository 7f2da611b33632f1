package dtos

// UpdateUserRequest defines the payload for updating an account profile.
// Pointer fields keep "absent" and "explicitly empty" distinguishable; the
// profile picture travels as a separate multipart file part.
type UpdateUserRequest struct {
	Name     *string `form:"name" json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Password *string `form:"password" json:"password,omitempty" validate:"omitempty,min=8"`
}
