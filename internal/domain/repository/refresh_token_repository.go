package repository

import (
	"context"
)

// RefreshTokenRepository stores the single active refresh token of each user.
// Writing a new token replaces the previous one, so a superseded token can be detected on its next use.
type RefreshTokenRepository interface {
	// SetRefreshToken overwrites the user's stored refresh token.
	// Only the token field is written; the rest of the document is not revalidated.
	SetRefreshToken(ctx context.Context, userID, token string) error

	// ClearRefreshToken unsets the user's stored refresh token. Clearing an absent token is not an error.
	ClearRefreshToken(ctx context.Context, userID string) error
}
