package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/platform/config"
)

// GoogleOAuthHandler handles the frontend-driven Google sign-in flow. Google
// only authenticates; the account itself must already exist, created by the
// administrator employee sync.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	gs portssvc.GoogleOAuthSvcFacade,
	us portssvc.UserSvcFacade,
	ah *AuthHandler,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: gs,
		userService:        us,
		authHandler:        ah,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes under the
// public auth group.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(
		services.GoogleOAuth,
		services.User,
		NewAuthHandler(services.User, services.Token, cfg),
	)
	google := rg.Group("/auth/google")
	{
		google.POST("/exchange", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a JWT
// @Description Exchanges the frontend's authorization code with Google, validates the ID token, and signs in the matching account by verified email.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired authorization code"
// @Failure 401 {object} ErrorResponse "No account matches the Google email"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	email, err := h.googleOAuthService.VerifiedEmail(ctx, oauth2Token)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	user, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account registered for this Google email"})
			return
		}
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to authenticate"})
		return
	}

	accessToken, err := h.authHandler.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken, User: dto.ToUserResponse(user)})
}
