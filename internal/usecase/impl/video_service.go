package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/domain/service"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"go.uber.org/fx"
)

type videoService struct {
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
	uploader  service.Uploader
	logger    *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo repository.VideoRepository
	UserRepo  repository.UserRepository
	Uploader  service.Uploader
	Logger    *slog.Logger
}

// NewVideoService creates a new video service
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo: params.VideoRepo,
		userRepo:  params.UserRepo,
		uploader:  params.Uploader,
		logger:    params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublishVideo uploads the media and thumbnail and stores a published video.
func (srv *videoService) PublishVideo(ctx context.Context, ownerID string, input *usecase.PublishVideoInput) (*entity.Video, error) {
	if isBlank(input.Title) {
		return nil, validationError("Title is required")
	}
	if input.Duration < 0 || math.IsNaN(input.Duration) || math.IsInf(input.Duration, 0) {
		return nil, validationError("Duration must be a non-negative number")
	}
	if isBlank(input.VideoLocalPath, input.ThumbnailLocalPath) {
		return nil, validationError("Video file and thumbnail are required")
	}

	videoURL, err := srv.uploader.Upload(ctx, input.VideoLocalPath)
	if err != nil {
		srv.log(ctx).Error("Failed to upload video file", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	thumbnailURL, err := srv.uploader.Upload(ctx, input.ThumbnailLocalPath)
	if err != nil {
		srv.log(ctx).Error("Failed to upload thumbnail", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	video := &entity.Video{
		Owner:       ownerID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Duration:    input.Duration,
		IsPublished: true,
	}
	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, translateRepoError(err, nil, "failed to create video")
	}

	srv.log(ctx).Info("Video published", slog.String("videoID", video.ID), slog.String("ownerID", ownerID))

	return video, nil
}

// GetVideo returns a video. Unpublished videos are only visible to their owner.
func (srv *videoService) GetVideo(ctx context.Context, videoID, viewerID string) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrVideoNotFound, "failed to load video")
	}

	if !video.IsPublished && video.Owner != viewerID {
		return nil, errors.WithStack(domainerrors.ErrVideoNotFound)
	}

	return video, nil
}

// RecordView counts a view of a published video and moves it to the front of the viewer's history.
func (srv *videoService) RecordView(ctx context.Context, videoID, viewerID string) error {
	if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return translateRepoError(err, domainerrors.ErrVideoNotFound, "failed to record view")
	}

	if err := srv.userRepo.PushWatchHistory(ctx, viewerID, videoID); err != nil {
		return translateRepoError(err, domainerrors.ErrUserNotFound, "failed to update watch history")
	}

	return nil
}

// TogglePublish flips the published flag of a video owned by the requester.
func (srv *videoService) TogglePublish(ctx context.Context, videoID, requesterID string) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrVideoNotFound, "failed to load video")
	}

	if video.Owner != requesterID {
		return nil, errors.WithStack(domainerrors.ErrVideoOwnership)
	}

	updated, err := srv.videoRepo.SetPublished(ctx, videoID, !video.IsPublished)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrVideoNotFound, "failed to toggle publish status")
	}

	srv.log(ctx).Info("Video publish status toggled",
		slog.String("videoID", videoID),
		slog.Bool("isPublished", updated.IsPublished),
	)

	return updated, nil
}

// ListChannelVideos returns one page of a channel's published videos.
func (srv *videoService) ListChannelVideos(ctx context.Context, ownerID string, page, limit int) (*entity.VideoPage, error) {
	page, limit = normalizePagination(page, limit)
	if page > usecase.MaxPage {
		return nil, validationError("Page is out of range")
	}

	videoPage, err := srv.videoRepo.ListPublishedByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, translateRepoError(err, nil, "failed to list channel videos")
	}

	return videoPage, nil
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = usecase.DefaultPage
	}
	if limit < 1 {
		limit = usecase.DefaultPageLimit
	}
	if limit > usecase.MaxPageLimit {
		limit = usecase.MaxPageLimit
	}

	return page, limit
}
