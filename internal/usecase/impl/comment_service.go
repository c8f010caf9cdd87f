package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"go.uber.org/fx"
)

type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns the video's comment feed, newest first.
func (srv *commentService) ListComments(ctx context.Context, videoID string) ([]*entity.CommentView, error) {
	if isBlank(videoID) {
		return nil, validationError("Video id is missing")
	}

	comments, err := srv.commentRepo.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, translateRepoError(err, nil, "failed to list comments")
	}

	return comments, nil
}

// AddComment stores a comment and returns it as read back from the store.
func (srv *commentService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" || isBlank(input.VideoID) {
		return nil, validationError("Content or video id missing")
	}

	comment := &entity.Comment{
		Content: content,
		Video:   input.VideoID,
		Owner:   input.OwnerID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, translateRepoError(err, nil, "failed to create comment")
	}

	created, err := srv.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, errors.Wrap(
			domainerrors.ErrInternalError.WithMessage("Something went wrong while adding the comment"),
			err.Error(),
		)
	}

	srv.log(ctx).Debug("Comment added", slog.String("commentID", created.ID), slog.String("videoID", created.Video))

	return created, nil
}

// DeleteComment removes a comment owned by the requester.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	if isBlank(commentID) {
		return validationError("Comment id is missing")
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return translateRepoError(err, domainerrors.ErrCommentNotFound, "failed to load comment")
	}

	if comment.Owner != requesterID {
		srv.log(ctx).Warn("Rejected comment deletion by non-owner",
			slog.String("commentID", commentID),
			slog.String("requesterID", requesterID),
		)

		return errors.WithStack(domainerrors.ErrCommentOwnership)
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(
				domainerrors.ErrInternalError.WithMessage("Something went wrong while deleting the comment"),
				err.Error(),
			)
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Debug("Comment deleted", slog.String("commentID", commentID))

	return nil
}
