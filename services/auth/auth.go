package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabinkeep/config"
	tokenRepo "cabinkeep/database/repository/token"
	"cabinkeep/models"
	"cabinkeep/utils"

	"go.uber.org/zap"
)

// ErrUnauthorizedEmail is returned when a verified Google identity is not the
// configured staff account.
var ErrUnauthorizedEmail = errors.New("email not authorized")

// ErrInvalidRefreshToken is returned when a presented refresh token is
// unknown or expired.
var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// TokenPair is the credential set handed to the client: a short-lived access
// token and a long-lived rotating refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService exchanges Google sign-ins and refresh tokens for access
// credentials.
type AuthService interface {
	SignInWithGoogle(ctx context.Context, idToken string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Tokens tokenRepo.RefreshTokenRepository
}

// SignInWithGoogle verifies a Google ID token, checks the identity against the
// allowed staff email, and issues a fresh token pair.
func (s *DefaultAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*TokenPair, error) {
	info, err := ValidateGoogleToken(idToken, config.AppConfig.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}
	if info.Email != config.AppConfig.AllowedEmail {
		return nil, ErrUnauthorizedEmail
	}
	return s.issuePair(ctx, info.Subject, info.Email)
}

// Refresh exchanges a refresh token for a new pair, rotating the old token
// out of the store.
func (s *DefaultAuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.Tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil || stored.Expired() {
		return nil, ErrInvalidRefreshToken
	}

	if err := s.Tokens.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return s.issuePair(ctx, stored.UserID, "")
}

// issuePair mints an access token, persists a new refresh token, and caches
// the access-token hash for the middleware fast path. A cache failure is not
// fatal; validation falls back to the JWT signature.
func (s *DefaultAuthService) issuePair(ctx context.Context, userID, email string) (*TokenPair, error) {
	accessTTL := time.Duration(config.AppConfig.AccessTokenTTLMin) * time.Minute
	accessToken, err := utils.GenerateToken(userID, email, accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := utils.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshTTL := time.Duration(config.AppConfig.RefreshTokenTTLDays) * 24 * time.Hour
	err = s.Tokens.Create(ctx, models.RefreshToken{
		Token:   refreshToken,
		UserID:  userID,
		Expires: time.Now().Add(refreshTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if err := utils.CacheAccessToken(ctx, utils.HashToken(accessToken), userID, accessTTL); err != nil {
		utils.GetLogger().Warn("failed to cache access token", zap.Error(err))
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
