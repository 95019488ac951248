package services

import (
	"context"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and validates the application's access and refresh
// tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user, returning the
	// token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a raw refresh token and its expiry time.
	// Only the hash of the raw token is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the user's
	// stored hash and expiry, returning the user on success.
	ValidateRefreshToken(ctx context.Context, cpf string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google authorization-code exchange used for
// administrator logins.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken trades an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// VerifiedEmail validates the ID token inside a Google token and returns
	// the verified email address.
	VerifiedEmail(ctx context.Context, token *oauth2.Token) (string, error)
}
