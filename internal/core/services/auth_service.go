package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/platform/config"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/utils"
	"google.golang.org/api/idtoken"
)

// tokenService implements TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// googleAuthService implements GoogleAuthSvcFacade using Google's ID token
// verification.
type googleAuthService struct {
	cfg *config.Config
}

// NewGoogleAuthService creates a new instance of googleAuthService.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{cfg: cfg}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

// ValidateGoogleIDToken validates an ID token string from Google and returns
// its payload with the verified e-mail and name claims.
func (s *googleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	return payload, nil
}
