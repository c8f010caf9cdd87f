package usecase

import (
	"context"

	"videotube/internal/domain/entity"
)

// ChannelUsecase reads the relational views around a user: their channel page and watch history.
type ChannelUsecase interface {
	// GetChannelProfile returns the channel of username as seen by viewerID, which may be empty.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)

	// GetWatchHistory returns the caller's watched videos, most recent first.
	GetWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error)
}
