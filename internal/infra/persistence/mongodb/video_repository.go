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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// videoRepository implements repository.VideoRepository on the 'videos' collection.
type videoRepository struct {
	videos *mongo.Collection
	now    func() time.Time
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &videoRepository{
		videos: db.Collection(model.VideosCollection),
		now:    time.Now,
	}
}

// Create persists a new video and fills in the generated id and timestamps.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	ownerOID, err := toObjectID(video.Owner)
	if err != nil {
		return err
	}

	now := repo.now().UTC()
	videoM := &model.VideoModel{
		ID:          primitive.NewObjectID(),
		Owner:       ownerOID,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		Views:       video.Views,
		IsPublished: video.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := repo.videos.InsertOne(ctx, videoM); err != nil {
		return translateWriteError(err, "failed to create video")
	}

	video.ID = videoM.ID.Hex()
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves a single video regardless of its published state.
func (repo *videoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	if err := repo.videos.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&videoM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find video")
	}

	return toVideoDomain(&videoM), nil
}

// IncrementViews adds one view to a published video. Unpublished videos count as missing.
func (repo *videoRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := toObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.videos.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "isPublished", Value: true}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}
	if result.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// SetPublished updates the published flag and returns the updated video.
func (repo *videoRepository) SetPublished(ctx context.Context, id string, published bool) (*entity.Video, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	var videoM model.VideoModel
	err = repo.videos.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: published},
			{Key: "updatedAt", Value: repo.now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&videoM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update video")
	}

	return toVideoDomain(&videoM), nil
}

// ListPublishedByOwner returns one page of the owner's published videos, newest first.
// page and limit are expected to be normalized by the caller.
func (repo *videoRepository) ListPublishedByOwner(ctx context.Context, ownerID string, page, limit int) (*entity.VideoPage, error) {
	oid, err := toObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.videos.Aggregate(ctx, channelVideosPipeline(oid, page, limit))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate channel videos")
	}

	var results []model.VideoPageModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode channel videos")
	}

	videoPage := &entity.VideoPage{
		Videos: []*entity.Video{},
		Page:   page,
		Limit:  limit,
	}
	if len(results) == 0 {
		return videoPage, nil
	}

	if len(results[0].Metadata) > 0 {
		videoPage.TotalDocs = results[0].Metadata[0].Total
	}
	for i := range results[0].Data {
		videoPage.Videos = append(videoPage.Videos, toVideoDomain(&results[0].Data[i]))
	}
	videoPage.TotalPages = totalPages(videoPage.TotalDocs, limit)
	videoPage.HasNextPage = page < videoPage.TotalPages

	return videoPage, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

func toVideoDomain(videoM *model.VideoModel) *entity.Video {
	return &entity.Video{
		ID:          videoM.ID.Hex(),
		Owner:       videoM.Owner.Hex(),
		VideoFile:   videoM.VideoFile,
		Thumbnail:   videoM.Thumbnail,
		Title:       videoM.Title,
		Description: videoM.Description,
		Duration:    videoM.Duration,
		Views:       videoM.Views,
		IsPublished: videoM.IsPublished,
		CreatedAt:   videoM.CreatedAt,
		UpdatedAt:   videoM.UpdatedAt,
	}
}
