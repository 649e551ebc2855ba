package dto

import "github.com/healthpredict/healthpredict/internal/domain/models"

// RegisterRequest creates a new account. The bcrypt cost limit caps
// passwords at 72 bytes.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullname" validate:"required,min=1,max=120"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuthResponse carries the issued token alongside the account it
// belongs to.
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int64   `json:"expires_in"`
	User        UserDTO `json:"user"`
}

// NewUserDTO maps a stored user onto its public view.
func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin,
	}
}
