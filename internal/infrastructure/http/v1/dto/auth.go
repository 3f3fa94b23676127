package dto

import (
	"kontora/internal/domain/user"
)

// RegisterRequest for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest for sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the read projection of an account. The password hash
// never leaves the server.
type UserResponse struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
}

// FromUser maps the aggregate to its read projection.
func FromUser(u *user.User) UserResponse {
	return UserResponse{
		UID:         u.UID().String(),
		Email:       u.Email().Value(),
		Status:      u.Status().String(),
		CreatedAt:   FormatTimestamp(u.CreatedAt()),
		UpdatedAt:   FormatTimestampPtr(u.UpdatedAt()),
		LastLoginAt: FormatTimestampPtr(u.LastLoginAt()),
	}
}

// LoginResponse carries the issued token and the account projection.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   string       `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
