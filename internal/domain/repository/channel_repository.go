package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/internal/errors"
)

// ErrChannelNotFound is returned when no user owns the requested channel name.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelRepository reads channel pages built from users and their subscription edges.
type ChannelRepository interface {
	// GetChannelProfile returns the channel with subscriber counters.
	// viewerID is optional; when empty or unknown IsSubscribed is false.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
}
