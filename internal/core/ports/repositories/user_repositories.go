package repositories

import (
	"context"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// UserReader defines read operations for login credential data
type UserReader interface {
	// FindUserByCPF retrieves a user by normalized CPF.
	FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for login credential data
type UserWriter interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changed user fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores (or clears, with empty hash and nil expiry) a
	// user's refresh token hash.
	UpdateRefreshToken(ctx context.Context, cpf string, tokenHash string, expiresAt *time.Time) error
}

// UserRepository combines all user-related repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
}
