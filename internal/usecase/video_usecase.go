package usecase

import (
	"context"

	"videotube/internal/domain/entity"
)

// Channel video pagination bounds.
const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 50
	MaxPage          = 1_000_000
)

// PublishVideoInput defines the data required to publish a video.
// The file paths point at locally staged uploads.
type PublishVideoInput struct {
	Title              string
	Description        string
	Duration           float64
	VideoLocalPath     string
	ThumbnailLocalPath string
}

// VideoUsecase defines video publishing, viewing and listing.
type VideoUsecase interface {
	PublishVideo(ctx context.Context, ownerID string, input *PublishVideoInput) (*entity.Video, error)
	GetVideo(ctx context.Context, videoID, viewerID string) (*entity.Video, error)
	RecordView(ctx context.Context, videoID, viewerID string) error
	TogglePublish(ctx context.Context, videoID, requesterID string) (*entity.Video, error)
	ListChannelVideos(ctx context.Context, ownerID string, page, limit int) (*entity.VideoPage, error)
}
