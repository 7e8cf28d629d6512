package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already taken")
)

// unique_violation
const pgErrCodeUniqueViolation = "23505"

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a password-credential user
func (r *Repository) Create(
	ctx context.Context,
	username, email, passwordHash, fullName string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		username,
		email,
		passwordHash,
		fullName,
	).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Provider,
		&user.ProviderID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return nil, ErrUserExists
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by OAuth provider or creates a new one
func (r *Repository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, username, email, fullName string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		username,
		email,
		fullName,
		provider,
		providerID,
	).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Provider,
		&user.ProviderID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.find(ctx, queryFindByID, userID)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(ctx, queryFindByUsername, username)
}

func (r *Repository) find(ctx context.Context, query, arg string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Provider,
		&user.ProviderID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
