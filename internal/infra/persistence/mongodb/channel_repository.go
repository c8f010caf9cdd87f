package mongodb

import (
	"context"

	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// channelRepository builds channel pages from the 'users' and 'subscriptions' collections.
type channelRepository struct {
	users *mongo.Collection
}

// NewChannelRepository is the constructor for channelRepository.
func NewChannelRepository(db *mongo.Database) repository.ChannelRepository {
	return &channelRepository{
		users: db.Collection(model.UsersCollection),
	}
}

// GetChannelProfile returns the channel with subscriber counters.
// An empty or malformed viewer id is treated as an anonymous viewer.
func (repo *channelRepository) GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	var viewer *primitive.ObjectID
	if viewerID != "" {
		if oid, err := toObjectID(viewerID); err == nil {
			viewer = &oid
		}
	}

	cursor, err := repo.users.Aggregate(ctx, channelProfilePipeline(username, viewer))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate channel profile")
	}

	var results []model.ChannelProfileModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode channel profile")
	}

	if len(results) == 0 {
		return nil, repository.ErrChannelNotFound
	}

	return toChannelProfileDomain(&results[0]), nil
}

func toChannelProfileDomain(profileM *model.ChannelProfileModel) *entity.ChannelProfile {
	return &entity.ChannelProfile{
		ID:                profileM.ID.Hex(),
		FullName:          profileM.FullName,
		Username:          profileM.Username,
		Email:             profileM.Email,
		Avatar:            profileM.Avatar,
		CoverImage:        profileM.CoverImage,
		SubscribersCount:  profileM.SubscribersCount,
		SubscribedToCount: profileM.ChannelsSubscribedToCount,
		IsSubscribed:      profileM.IsSubscribed,
	}
}
