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

// credentialsProjection strips the fields that must never leave the repository on read models.
var credentialsProjection = bson.D{
	{Key: "password", Value: 0},
	{Key: "refreshToken", Value: 0},
}

// userRepository implements repository.UserRepository on the 'users' collection.
type userRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(model.UsersCollection),
		now:   time.Now,
	}
}

// FindByID retrieves a single user, including credential fields, by id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, "failed to find user by id")
}

// FindByUsernameOrEmail retrieves the user matching either identifier.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	filter, ok := usernameOrEmailFilter(username, email)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, filter, "failed to find user by username or email")
}

// ExistsByUsernameOrEmail reports whether the username or the email is already taken.
func (repo *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter, ok := usernameOrEmailFilter(username, email)
	if !ok {
		return false, nil
	}

	count, err := repo.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user and fills in the generated id and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now().UTC()
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}
	userM.ID = primitive.NewObjectID()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	if _, err := repo.users.InsertOne(ctx, userM); err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID.Hex()
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := toObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "password", Value: passwordHash},
			{Key: "updatedAt", Value: repo.now().UTC()},
		}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update password")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateFields applies a partial update and returns the user without credential fields.
func (repo *userRepository) UpdateFields(ctx context.Context, id string, update repository.UserUpdate) (*entity.User, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	appendSet := func(key string, value *string) {
		if value != nil {
			set = append(set, bson.E{Key: key, Value: *value})
		}
	}
	appendSet("fullName", update.FullName)
	appendSet("email", update.Email)
	appendSet("username", update.Username)
	appendSet("avatar", update.Avatar)
	appendSet("coverImage", update.CoverImage)
	set = append(set, bson.E{Key: "updatedAt", Value: repo.now().UTC()})

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(credentialsProjection)

	var userM model.UserModel
	err = repo.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateWriteError(err, "failed to update user")
	}

	return toUserDomain(&userM), nil
}

// GetWatchHistory returns the user's watched videos in the order of the stored history.
// Ids whose video no longer exists are skipped.
func (repo *userRepository) GetWatchHistory(ctx context.Context, id string) ([]*entity.WatchedVideo, error) {
	oid, err := toObjectID(id)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.users.Aggregate(ctx, watchHistoryPipeline(oid))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate watch history")
	}

	var results []model.WatchHistoryModel
	if err := cursor.All(ctx, &results); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode watch history")
	}

	if len(results) == 0 {
		return []*entity.WatchedVideo{}, nil
	}

	return orderWatchHistory(&results[0]), nil
}

// PushWatchHistory moves the video to the front of the user's watch history.
func (repo *userRepository) PushWatchHistory(ctx context.Context, userID, videoID string) error {
	userOID, err := toObjectID(userID)
	if err != nil {
		return err
	}
	videoOID, err := toObjectID(videoID)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: "_id", Value: userOID}}

	result, err := repo.users.UpdateOne(ctx, filter,
		bson.D{{Key: "$pull", Value: bson.D{{Key: "watchHistory", Value: videoOID}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull watch history entry")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	_, err = repo.users.UpdateOne(ctx, filter,
		bson.D{{Key: "$push", Value: bson.D{{Key: "watchHistory", Value: bson.D{
			{Key: "$each", Value: bson.A{videoOID}},
			{Key: "$position", Value: 0},
		}}}}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push watch history entry")
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D, details string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.users.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

func usernameOrEmailFilter(username, email string) (bson.D, bool) {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil, false
	}

	return bson.D{{Key: "$or", Value: or}}, true
}

// orderWatchHistory restores the stored history order over the joined videos.
func orderWatchHistory(result *model.WatchHistoryModel) []*entity.WatchedVideo {
	byID := make(map[primitive.ObjectID]*model.WatchedVideoModel, len(result.WatchHistory))
	for i := range result.WatchHistory {
		byID[result.WatchHistory[i].ID] = &result.WatchHistory[i]
	}

	videos := make([]*entity.WatchedVideo, 0, len(result.WatchHistory))
	for _, oid := range result.HistoryOrder {
		videoM, ok := byID[oid]
		if !ok {
			continue
		}
		videos = append(videos, toWatchedVideoDomain(videoM))
		delete(byID, oid)
	}

	return videos
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID.Hex(),
		Username:     userM.Username,
		Email:        userM.Email,
		FullName:     userM.FullName,
		Avatar:       userM.Avatar,
		CoverImage:   userM.CoverImage,
		WatchHistory: hexIDs(userM.WatchHistory),
		Password:     userM.Password,
		RefreshToken: userM.RefreshToken,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) (*model.UserModel, error) {
	history, err := toObjectIDs(user.WatchHistory)
	if err != nil {
		return nil, err
	}

	return &model.UserModel{
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		WatchHistory: history,
		Password:     user.Password,
		RefreshToken: user.RefreshToken,
	}, nil
}

func toOwnerSummaryDomain(ownerM model.OwnerSummaryModel) entity.OwnerSummary {
	return entity.OwnerSummary{
		Username: ownerM.Username,
		FullName: ownerM.FullName,
		Avatar:   ownerM.Avatar,
	}
}

func toWatchedVideoDomain(videoM *model.WatchedVideoModel) *entity.WatchedVideo {
	return &entity.WatchedVideo{
		ID:          videoM.ID.Hex(),
		VideoFile:   videoM.VideoFile,
		Thumbnail:   videoM.Thumbnail,
		Title:       videoM.Title,
		Description: videoM.Description,
		Duration:    videoM.Duration,
		Views:       videoM.Views,
		Owner:       toOwnerSummaryDomain(videoM.Owner),
		CreatedAt:   videoM.CreatedAt,
	}
}
