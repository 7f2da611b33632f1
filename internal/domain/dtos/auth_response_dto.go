package dtos

import "healthvault-api/internal/domain/entities"

// UserDTO represents account data in API responses. The password hash is
// never included.
type UserDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

// NewUserDTO maps a User entity to its API representation.
func NewUserDTO(u *entities.User) UserDTO {
	return UserDTO{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
