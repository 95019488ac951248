package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/utils"
	"github.com/jvamontagens/assembly_backend/internal/utils/document"
)

// userService manages login credentials.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByCPF retrieves a user by normalized CPF.
func (s *userService) GetUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	normalized, err := document.NormalizeCPF(cpf)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByCPF(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", normalized, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by login email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", email, err)
	}
	return user, nil
}

// Authenticate verifies CPF + password. A missing user and a wrong password
// are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, cpf string, password string) (*domain.User, error) {
	user, err := s.GetUserByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// StoreRefreshToken persists the hash of a freshly issued refresh token.
func (s *userService) StoreRefreshToken(ctx context.Context, cpf string, tokenHash string, expiresAt time.Time) error {
	normalized, err := document.NormalizeCPF(cpf)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, normalized, tokenHash, &expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token for %s: %w", normalized, err)
	}
	return nil
}

// ClearRefreshToken invalidates a user's refresh token on logout.
func (s *userService) ClearRefreshToken(ctx context.Context, cpf string) error {
	normalized, err := document.NormalizeCPF(cpf)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, normalized, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token for %s: %w", normalized, err)
	}
	return nil
}
