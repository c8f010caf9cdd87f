package mongodb

import (
	"context"
	"time"

	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/errors"
	"videotube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// commentRepository implements repository.CommentRepository on the 'comments' collection.
type commentRepository struct {
	comments *mongo.Collection
	now      func() time.Time
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{
		comments: db.Collection(model.CommentsCollection),
		now:      time.Now,
	}
}

// Create persists a new comment and fills in the generated id and timestamps.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	videoOID, err := toObjectID(comment.Video)
	if err != nil {
		return err
	}
	ownerOID, err := toObjectID(comment.Owner)
	if err != nil {
		return err
	}

	now := repo.now().UTC()
	commentM := &model.CommentModel{
		ID:        primitive.NewObjectID(),
		Content:   comment.Content,
		Video:     videoOID,
		Owner:     ownerOID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := repo.comments.InsertOne(ctx, commentM); err != nil {
		return translateWriteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID.Hex()
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a single comment.
func (repo *commentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var commentM model.CommentModel
	if err := repo.comments.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&commentM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// Delete removes a comment.
func (repo *commentRepository) Delete(ctx context.Context, id string) error {
	oid, err := toObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// ListByVideo returns the video's comments, newest first, with their authors embedded.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID string) ([]*entity.CommentView, error) {
	oid, err := toObjectID(videoID)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.comments.Aggregate(ctx, commentFeedPipeline(oid))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate comments")
	}

	var results []model.CommentViewModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode comments")
	}

	views := make([]*entity.CommentView, 0, len(results))
	for i := range results {
		views = append(views, &entity.CommentView{
			ID:        results[i].ID.Hex(),
			Content:   results[i].Content,
			CreatedAt: results[i].CreatedAt,
			Owner:     toOwnerSummaryDomain(results[i].Owner),
		})
	}

	return views, nil
}

func toCommentDomain(commentM *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        commentM.ID.Hex(),
		Content:   commentM.Content,
		Video:     commentM.Video.Hex(),
		Owner:     commentM.Owner.Hex(),
		CreatedAt: commentM.CreatedAt,
		UpdatedAt: commentM.UpdatedAt,
	}
}
