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

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comment feed of a video.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// AddCommentRequest is the body of the add comment endpoint.
type AddCommentRequest struct {
	Content string `json:"content" form:"content" validate:"max=1000"`
}

// ListComments returns the comments of a video, newest first.
func (h *CommentHandler) ListComments(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), c.Param("videoId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments fetched successfully")
}

// AddComment posts a comment on a video as the caller.
func (h *CommentHandler) AddComment(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), &usecase.AddCommentInput{
		VideoID: c.Param("videoId"),
		OwnerID: identity.UserID,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// DeleteComment deletes a comment. Only its author may do so.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), c.Param("commentId"), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
