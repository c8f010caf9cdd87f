package impl

import (
	"context"
	"log/slog"

	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/usecase"

	"go.uber.org/fx"
)

type channelService struct {
	channelRepo repository.ChannelRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	ChannelRepo repository.ChannelRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewChannelService creates a new channel service
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		channelRepo: params.ChannelRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelProfile returns the channel page with its subscription counters.
func (srv *channelService) GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	username = normalizeIdentifier(username)
	if username == "" {
		return nil, validationError("Username is missing")
	}

	profile, err := srv.channelRepo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		srv.log(ctx).Debug("Channel lookup failed", slog.String("username", username), slog.Any("error", err))

		return nil, translateRepoError(err, domainerrors.ErrChannelNotFound, "failed to load channel profile")
	}

	return profile, nil
}

// GetWatchHistory returns the caller's watched videos, most recent first.
func (srv *channelService) GetWatchHistory(ctx context.Context, userID string) ([]*entity.WatchedVideo, error) {
	history, err := srv.userRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to load watch history")
	}

	if history == nil {
		history = []*entity.WatchedVideo{}
	}

	return history, nil
}
