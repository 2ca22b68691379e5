package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/nikitph/los-backend/internal/apperrors"
	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/platform/config"
	"github.com/nikitph/los-backend/internal/utils"
)

// tokenService issues JWT access tokens and opaque refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT for the user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates an opaque refresh token. The caller is
// responsible for persisting its hash against the user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	return rawRefreshToken, expiryTime, nil
}

// ValidateAndParseRefreshToken checks a presented refresh token against the
// user's stored hash and expiry.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.UserProfile, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// googleUserInfo is the subset of Google's userinfo response we consume.
type googleUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// googleOAuthService exchanges Google authorization codes for verified
// identities using the standard authorization-code flow.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new googleOAuthService.
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

// ExchangeCodeForIdentity exchanges the authorization code and returns the
// verified Google identity. Prefers the ID token when present, falling back
// to the userinfo endpoint.
func (s *googleOAuthService) ExchangeCodeForIdentity(ctx context.Context, code string) (*dto.GoogleIdentity, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
		if err != nil {
			return nil, fmt.Errorf("google ID token validation failed: %w", err)
		}
		identity := &dto.GoogleIdentity{
			Email:     claimString(payload.Claims, "email"),
			FirstName: claimString(payload.Claims, "given_name"),
			LastName:  claimString(payload.Claims, "family_name"),
		}
		if identity.Email != "" {
			return identity, nil
		}
	}

	return s.fetchUserInfo(ctx, token)
}

func (s *googleOAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleIdentity, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	if userInfo.Email == "" {
		return nil, fmt.Errorf("google userinfo response missing email")
	}

	return &dto.GoogleIdentity{
		Email:     userInfo.Email,
		FirstName: userInfo.GivenName,
		LastName:  userInfo.FamilyName,
	}, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)
	return v
}
