// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"videotube/internal/domain/entity"
)

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionUsecase manages the authenticated session of a user: a short-lived access token
// and a single stored refresh token that is rotated on every use.
type SessionUsecase interface {
	// IssueTokenPair signs a new pair and replaces the user's stored refresh token.
	IssueTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error)

	// VerifyAccessToken resolves the caller from an access token without touching the store.
	VerifyAccessToken(ctx context.Context, token string) (*entity.Identity, error)

	// RotateRefreshToken exchanges the stored refresh token for a new pair.
	RotateRefreshToken(ctx context.Context, presented string) (*TokenPair, error)

	// ClearToken drops the stored refresh token. It is idempotent.
	ClearToken(ctx context.Context, userID string) error
}
