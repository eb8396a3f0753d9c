package dto

import (
	"time"

	"github.com/campushub/studenthub/internal/domain"
)

// SignUpRequest payload for new accounts.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// SignInRequest payload for login.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionResponse carries the issued access token.
type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ProfileUpdateRequest carries the client-editable profile fields. Any
// id/email keys in the body are ignored.
type ProfileUpdateRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	StudentID *string `json:"studentId"`
	Major     *string `json:"major"`
}

// NewUserResponse maps an account.
func NewUserResponse(account *domain.Account) UserResponse {
	return UserResponse{ID: account.ID, Email: account.Email, Name: account.Name}
}
