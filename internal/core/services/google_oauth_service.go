package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/platform/config"
)

// googleOAuthService handles the Google authorization-code exchange used for
// administrator logins.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new GoogleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCodeForToken trades an authorization code for Google tokens.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// VerifiedEmail validates the ID token inside a Google token and returns the
// verified email address it carries.
func (s *googleOAuthService) VerifiedEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	if s.cfg.GoogleClientID == "" {
		return "", errors.New("google client ID is not configured in the application")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("%w: google token carries no id_token", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("%w: google ID token carries no email claim", apperrors.ErrUnauthorized)
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return "", fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}
	return email, nil
}
