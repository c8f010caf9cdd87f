package mongodb

import (
	"context"
	"testing"
	"time"

	"videotube/internal/domain/entity"
	"videotube/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const usersNamespace = "videotube.users"

func newTestUser() *entity.User {
	return &entity.User{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Avatar:   "https://cdn.example.com/avatars/alice.png",
		Password: "hash",
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		videoID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "username", Value: "alice"},
			{Key: "email", Value: "alice@example.com"},
			{Key: "password", Value: "hash"},
			{Key: "refreshToken", Value: "rt"},
			{Key: "watchHistory", Value: bson.A{videoID}},
		}))

		repo := NewUserRepository(mt.DB)
		user, err := repo.FindByID(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Equal(t, userID.Hex(), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.Password)
		assert.Equal(t, "rt", user.RefreshToken)
		assert.Equal(t, []string{videoID.Hex()}, user.WatchHistory)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch))

		repo := NewUserRepository(mt.DB)
		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		_, err := repo.FindByID(context.Background(), "not-an-id")

		assert.ErrorIs(t, err, repository.ErrInvalidID)
	})

	mt.Run("store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "boom",
			Name:    "BadValue",
		}))

		repo := NewUserRepository(mt.DB)
		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_FindByUsernameOrEmail_NoIdentifiers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty identifiers", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		_, err := repo.FindByUsernameOrEmail(context.Background(), "", "")

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("taken", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch, bson.D{
			{Key: "n", Value: int32(1)},
		}))

		repo := NewUserRepository(mt.DB)
		exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@example.com")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	mt.Run("free", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch))

		repo := NewUserRepository(mt.DB)
		exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "alice", "")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		repo := &userRepository{users: mt.Coll, now: func() time.Time { return fixed }}
		user := newTestUser()

		require.NoError(t, repo.Create(context.Background(), user))
		assert.True(t, primitive.IsValidObjectID(user.ID))
		assert.Equal(t, fixed, user.CreatedAt)
		assert.Equal(t, fixed, user.UpdatedAt)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		repo := NewUserRepository(mt.DB)
		err := repo.Create(context.Background(), newTestUser())

		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updated", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		repo := NewUserRepository(mt.DB)
		err := repo.UpdatePassword(context.Background(), primitive.NewObjectID().Hex(), "new-hash")

		assert.NoError(t, err)
	})

	mt.Run("missing user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		repo := NewUserRepository(mt.DB)
		err := repo.UpdatePassword(context.Background(), primitive.NewObjectID().Hex(), "new-hash")

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_UpdateFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns updated user", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: userID},
			{Key: "username", Value: "alice"},
			{Key: "fullName", Value: "Alice Liddell"},
			{Key: "email", Value: "new@example.com"},
		}}))

		repo := NewUserRepository(mt.DB)
		email := "new@example.com"
		fullName := "Alice Liddell"
		user, err := repo.UpdateFields(context.Background(), userID.Hex(), repository.UserUpdate{
			FullName: &fullName,
			Email:    &email,
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "Alice Liddell", user.FullName)
		assert.Empty(t, user.Password)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
			Name:    "DuplicateKey",
		}))

		repo := NewUserRepository(mt.DB)
		email := "taken@example.com"
		_, err := repo.UpdateFields(context.Background(), primitive.NewObjectID().Hex(), repository.UserUpdate{Email: &email})

		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})
}

func TestUserRepository_GetWatchHistory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("follows stored order and skips missing videos", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		deleted := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "historyOrder", Value: bson.A{second, deleted, first}},
			{Key: "watchHistory", Value: bson.A{
				bson.D{
					{Key: "_id", Value: first},
					{Key: "title", Value: "first"},
					{Key: "owner", Value: bson.D{{Key: "username", Value: "bob"}}},
				},
				bson.D{
					{Key: "_id", Value: second},
					{Key: "title", Value: "second"},
					{Key: "owner", Value: bson.D{{Key: "username", Value: "carol"}}},
				},
			}},
		}))

		repo := NewUserRepository(mt.DB)
		history, err := repo.GetWatchHistory(context.Background(), userID.Hex())

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "second", history[0].Title)
		assert.Equal(t, "carol", history[0].Owner.Username)
		assert.Equal(t, "first", history[1].Title)
	})

	mt.Run("unknown user yields empty history", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNamespace, mtest.FirstBatch))

		repo := NewUserRepository(mt.DB)
		history, err := repo.GetWatchHistory(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.Empty(t, history)
		assert.NotNil(t, history)
	})
}

func TestUserRepository_PushWatchHistory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pulls then pushes", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		repo := NewUserRepository(mt.DB)
		err := repo.PushWatchHistory(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

		assert.NoError(t, err)
	})

	mt.Run("missing user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		repo := NewUserRepository(mt.DB)
		err := repo.PushWatchHistory(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	mt.Run("invalid video id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		err := repo.PushWatchHistory(context.Background(), primitive.NewObjectID().Hex(), "bad")

		assert.ErrorIs(t, err, repository.ErrInvalidID)
	})
}
