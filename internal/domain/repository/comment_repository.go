package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/internal/errors"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence operations for video comments.
type CommentRepository interface {
	// Create persists a new comment and fills in the generated id and timestamps.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment.
	FindByID(ctx context.Context, id string) (*entity.Comment, error)

	// Delete removes a comment. It returns ErrCommentNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error

	// ListByVideo returns the video's comments, newest first, with their authors embedded.
	ListByVideo(ctx context.Context, videoID string) ([]*entity.CommentView, error)
}
