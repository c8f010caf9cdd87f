package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessClaims are the claims embedded in an access token.
type AccessClaims struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims embedded in a refresh token. Subject holds the user id.
type RefreshClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenSubject is the identity encoded into a new token pair.
type TokenSubject struct {
	UserID   string
	Username string
	FullName string
	Email    string
}

// TokenService defines the interface for signing and parsing JWTs.
// It is stateless; persisting the active refresh token is the session use case's job.
type TokenService interface {
	// GenerateTokens signs a new access token and a new refresh token for the subject.
	GenerateTokens(subject TokenSubject) (accessToken string, refreshToken string, err error)

	// ParseAccessToken verifies an access token against the access secret.
	// It fails with ErrTokenMissing, ErrTokenExpired or ErrTokenInvalid.
	ParseAccessToken(tokenString string) (*AccessClaims, error)

	// ParseRefreshToken verifies a refresh token against the refresh secret.
	// It fails with ErrTokenMissing, ErrTokenExpired or ErrTokenInvalid.
	ParseRefreshToken(tokenString string) (*RefreshClaims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration
}
