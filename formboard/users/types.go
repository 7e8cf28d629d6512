package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered user
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"` // nil for OAuth-only accounts
	FullName     string    `json:"full_name"`
	Provider     string    `json:"-"` // OAuth provider, empty for password accounts
	ProviderID   string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
