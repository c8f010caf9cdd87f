package mongodb

import (
	"context"
	"time"

	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// refreshTokenRepository keeps the single active refresh token on the user document.
type refreshTokenRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *mongo.Database) repository.RefreshTokenRepository {
	return &refreshTokenRepository{
		users: db.Collection(model.UsersCollection),
		now:   time.Now,
	}
}

// SetRefreshToken overwrites the stored token with a targeted $set.
func (repo *refreshTokenRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	oid, err := toObjectID(userID)
	if err != nil {
		return err
	}

	result, err := repo.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "refreshToken", Value: token},
			{Key: "updatedAt", Value: repo.now().UTC()},
		}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearRefreshToken unsets the stored token. A missing user is not an error.
func (repo *refreshTokenRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	oid, err := toObjectID(userID)
	if err != nil {
		return err
	}

	_, err = repo.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear refresh token")
	}

	return nil
}
