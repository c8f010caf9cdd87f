package usecase

import (
	"context"

	"videotube/internal/domain/entity"
)

// AddCommentInput defines the data required to comment on a video.
type AddCommentInput struct {
	VideoID string
	OwnerID string
	Content string
}

// CommentUsecase defines the comment feed and its mutations.
type CommentUsecase interface {
	ListComments(ctx context.Context, videoID string) ([]*entity.CommentView, error)
	AddComment(ctx context.Context, input *AddCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, requesterID string) error
}
