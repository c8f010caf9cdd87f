package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/internal/errors"
)

// ErrVideoNotFound is returned when a video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines persistence operations for videos.
type VideoRepository interface {
	// Create persists a new video and fills in the generated id and timestamps.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a single video regardless of its published state.
	FindByID(ctx context.Context, id string) (*entity.Video, error)

	// IncrementViews atomically adds one view to a published video.
	IncrementViews(ctx context.Context, id string) error

	// SetPublished updates the published flag and returns the updated video.
	SetPublished(ctx context.Context, id string, published bool) (*entity.Video, error)

	// ListPublishedByOwner returns one page of the owner's published videos, newest first.
	ListPublishedByOwner(ctx context.Context, ownerID string, page, limit int) (*entity.VideoPage, error)
}
