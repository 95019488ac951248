package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/platform/config"
	"github.com/jvamontagens/assembly_backend/internal/utils"
)

// refreshTokenByteLength sizes the raw refresh token (hex doubles it).
const refreshTokenByteLength = 32

// tokenService issues access tokens and manages refresh token rotation.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT with the user's CPF as subject.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.CPF, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a raw refresh token and persists only its
// hash on the user record.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(refreshTokenByteLength)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(raw)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.CPF, hash, &expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return raw, expiresAt, nil
}

// ValidateRefreshToken checks a raw refresh token against the user's stored
// hash and expiry.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, cpf string, refreshToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", cpf, err)
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, fmt.Errorf("%w: no refresh token issued", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: refresh token mismatch", apperrors.ErrUnauthorized)
	}
	return user, nil
}
