package mongodb

import (
	"context"

	"videotube/internal/errors"
	"videotube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexSpecs lists the indexes each collection needs. Uniqueness of usernames and
// emails is enforced here as well as by the pre-insert lookup.
var indexSpecs = map[string][]mongo.IndexModel{
	model.UsersCollection: {
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	model.CommentsCollection: {
		{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	model.SubscriptionsCollection: {
		{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "subscriber", Value: 1}}},
	},
	model.VideosCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	model.PlaylistsCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	},
}

// EnsureIndexes creates the indexes if they do not exist yet. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexSpecs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
