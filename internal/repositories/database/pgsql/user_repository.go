package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	"github.com/jvamontagens/assembly_backend/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	u := domain.User{
		CPF:          m.CPF,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
	if m.RefreshTokenHash != nil {
		u.RefreshTokenHash = *m.RefreshTokenHash
	}
	u.RefreshTokenExpiryTime = m.RefreshTokenExpiryTime
	return u
}

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.CPF,
		&m.FullName,
		&m.Email,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (cpf, full_name, email, password_hash)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, user.CPF, user.FullName, user.Email, user.PasswordHash)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("user %s", user.CPF))
	}
	return nil
}

func (r *PgxUserRepository) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	query := `
		SELECT cpf, full_name, email, password_hash, refresh_token_hash, refresh_token_expiry_time
		FROM users
		WHERE cpf = $1;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", cpf, err)
	}
	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT cpf, full_name, email, password_hash, refresh_token_hash, refresh_token_expiry_time
		FROM users
		WHERE email = $1;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, password_hash = $4
		WHERE cpf = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, user.CPF, user.FullName, user.Email, user.PasswordHash)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("user %s", user.CPF))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, cpf string, tokenHash string, expiresAt *time.Time) error {
	var hash *string
	if tokenHash != "" {
		hash = &tokenHash
	}
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3
		WHERE cpf = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, cpf, hash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token of user %s: %w", cpf, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
