package handler

import (
	"log/slog"
	"net/http"

	"videotube/internal/delivery/http/response"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Stager  *FileStager
	Logger  *slog.Logger
}

// VideoHandler serves video publishing, playback bookkeeping and channel listings.
type VideoHandler struct {
	videoUC usecase.VideoUsecase
	stager  *FileStager
	logger  *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		stager:  params.Stager,
		logger:  params.Logger,
	}
}

// PublishVideoRequest is the multipart form of the publish endpoint.
type PublishVideoRequest struct {
	Title       string  `form:"title" validate:"max=200"`
	Description string  `form:"description" validate:"max=5000"`
	Duration    float64 `form:"duration"`
}

// ListVideosQuery is the pagination of the channel listing.
type ListVideosQuery struct {
	Page  int `query:"page" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

// PublishVideo uploads the `videoFile` and `thumbnail` parts and stores the video.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req PublishVideoRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	videoPath, err := h.stager.Stage(c, "videoFile")
	if err != nil {
		return errors.WithStack(err)
	}
	thumbnailPath, err := h.stager.Stage(c, "thumbnail")
	if err != nil {
		h.stager.Discard(videoPath)

		return errors.WithStack(err)
	}
	defer h.stager.Discard(videoPath, thumbnailPath)

	video, err := h.videoUC.PublishVideo(c.Request().Context(), identity.UserID, &usecase.PublishVideoInput{
		Title:              req.Title,
		Description:        req.Description,
		Duration:           req.Duration,
		VideoLocalPath:     videoPath,
		ThumbnailLocalPath: thumbnailPath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video published successfully")
}

// GetVideo returns a video. Unpublished videos are only visible to their owner.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	video, err := h.videoUC.GetVideo(c.Request().Context(), c.Param("videoId"), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video fetched successfully")
}

// RecordView counts a view and moves the video to the top of the caller's watch history.
func (h *VideoHandler) RecordView(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.videoUC.RecordView(c.Request().Context(), c.Param("videoId"), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "View recorded")
}

// TogglePublish flips the published flag of one of the caller's videos.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), c.Param("videoId"), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Publish status toggled successfully")
}

// ListChannelVideos returns a page of the published videos of a channel.
func (h *VideoHandler) ListChannelVideos(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	var query ListVideosQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	page, err := h.videoUC.ListChannelVideos(c.Request().Context(), c.Param("userId"), query.Page, query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Channel videos fetched successfully")
}
