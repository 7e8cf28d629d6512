package auth

import (
	"context"

	"codeberg.org/formboard/server/formboard/users"
)

// UserStore is the user-record access the auth handlers need. Both the
// postgres repository and the in-memory store satisfy it.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash, fullName string) (*users.User, error)
	FindOrCreateByProvider(ctx context.Context, provider, providerID, username, email, fullName string) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
	FindByUsername(ctx context.Context, username string) (*users.User, error)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=40,alphanum"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	FullName string `json:"full_name" binding:"required,max=120"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after login, registration, or an OAuth callback
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}
