package impl

import (
	"context"
	"testing"

	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/errors"
	mockRepo "videotube/internal/mocks/repository"
	mockSvc "videotube/internal/mocks/service"
	mockUsecase "videotube/internal/mocks/usecase"
	"videotube/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	sessions *mockUsecase.MockSessionUsecase
	hasher   *mockSvc.MockPasswordHasher
	uploader *mockSvc.MockUploader
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	uploader := mockSvc.NewMockUploader(t)

	srv := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Sessions: sessions,
		Hasher:   hasher,
		Uploader: uploader,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  srv,
		userRepo: userRepo,
		sessions: sessions,
		hasher:   hasher,
		uploader: uploader,
	}
}

func validRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Email:               "  Alice@Example.com ",
		Username:            " Alice ",
		FullName:            "Alice Liddell",
		Password:            "secret",
		AvatarLocalPath:     "/tmp/avatar.png",
		CoverImageLocalPath: "/tmp/cover.png",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := newID()

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://cdn/avatar.png", nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/cover.png").Return("https://cdn/cover.png", nil)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, "https://cdn/avatar.png", user.Avatar)
			assert.Equal(t, "https://cdn/cover.png", user.CoverImage)
			user.ID = userID
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "hashed",
		RefreshToken: "stale",
	}, nil)

	user, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.Password)
	assert.Empty(t, user.RefreshToken)
}

func TestUserService_Register_WithoutCoverImage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.CoverImageLocalPath = ""
	userID := newID()

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://cdn/avatar.png", nil)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Empty(t, user.CoverImage)
			user.ID = userID
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	_, err := fx.service.Register(ctx, input)

	assert.NoError(t, err)
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterUserInput)
	}{
		{name: "blank full name", mutate: func(in *usecase.RegisterUserInput) { in.FullName = "   " }},
		{name: "blank email", mutate: func(in *usecase.RegisterUserInput) { in.Email = "" }},
		{name: "blank username", mutate: func(in *usecase.RegisterUserInput) { in.Username = "\t" }},
		{name: "blank password", mutate: func(in *usecase.RegisterUserInput) { in.Password = " " }},
		{name: "malformed email", mutate: func(in *usecase.RegisterUserInput) { in.Email = "alice-at-example" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_Register_Conflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(true, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_MissingAvatar(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.AvatarLocalPath = ""

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_AvatarUploadFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("", assert.AnError)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateOnInsert(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.CoverImageLocalPath = ""

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://cdn/avatar.png", nil)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrDuplicateKey, "E11000"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_ReadBackFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.CoverImageLocalPath = ""
	userID := newID()

	fx.userRepo.EXPECT().ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(false, nil)
	fx.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return("https://cdn/avatar.png", nil)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID(), Username: "alice", Password: "hashed", RefreshToken: "old"}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.sessions.EXPECT().IssueTokenPair(ctx, user).
		Return(&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "Alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Empty(t, out.User.Password)
	assert.Empty(t, out.User.RefreshToken)
}

func TestUserService_Login_Failures(t *testing.T) {
	t.Run("no identifier", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Password: "secret"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "", "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: newID(), Password: "hashed"}

		fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := newID()

	fx.sessions.EXPECT().ClearToken(ctx, userID).Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, userID))
}

func TestUserService_RefreshToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.RefreshToken(context.Background(), "  ")

		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("rotates", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().RotateRefreshToken(ctx, "current").
			Return(&usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		pair, err := fx.service.RefreshToken(ctx, "current")

		require.NoError(t, err)
		assert.Equal(t, "r", pair.RefreshToken)
	})

	t.Run("reused token", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().RotateRefreshToken(ctx, "old").Return(nil, domainerrors.ErrRefreshTokenReused)

		_, err := fx.service.RefreshToken(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: newID(), Password: "old-hash"}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", "old-hash").Return(true)
		fx.hasher.EXPECT().Hash("new").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new"})

		assert.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: newID(), Password: "old-hash"}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "old-hash").Return(false)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{OldPassword: "bad", NewPassword: "new"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	})

	t.Run("blank fields", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ChangePassword(context.Background(), newID(), &usecase.ChangePasswordInput{OldPassword: "old"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_GetCurrentUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID(), Username: "alice", Password: "hash"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetCurrentUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.Password)
}

func TestUserService_UpdateAccountDetails(t *testing.T) {
	t.Run("normalizes and updates", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := newID()
		expected := repository.UserUpdate{
			Email:    ptr("new@example.com"),
			Username: ptr("newname"),
		}

		fx.userRepo.EXPECT().UpdateFields(ctx, userID, expected).
			Return(&entity.User{ID: userID, Username: "newname", Email: "new@example.com"}, nil)

		user, err := fx.service.UpdateAccountDetails(ctx, userID, &usecase.UpdateAccountInput{
			Email:    ptr(" New@Example.com "),
			Username: ptr("NewName"),
		})

		require.NoError(t, err)
		assert.Equal(t, "newname", user.Username)
	})

	t.Run("empty update", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAccountDetails(context.Background(), newID(), &usecase.UpdateAccountInput{})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAccountDetails(context.Background(), newID(), &usecase.UpdateAccountInput{Email: ptr("nope")})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := newID()

		fx.userRepo.EXPECT().UpdateFields(ctx, userID, repository.UserUpdate{Username: ptr("taken")}).
			Return(nil, errors.Wrap(repository.ErrDuplicateKey, "E11000"))

		_, err := fx.service.UpdateAccountDetails(ctx, userID, &usecase.UpdateAccountInput{Username: ptr("taken")})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_UpdateAvatar(t *testing.T) {
	t.Run("uploads then stores url", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := newID()

		fx.uploader.EXPECT().Upload(ctx, "/tmp/new.png").Return("https://cdn/new.png", nil)
		fx.userRepo.EXPECT().UpdateFields(ctx, userID, repository.UserUpdate{Avatar: ptr("https://cdn/new.png")}).
			Return(&entity.User{ID: userID, Avatar: "https://cdn/new.png"}, nil)

		user, err := fx.service.UpdateAvatar(ctx, userID, "/tmp/new.png")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/new.png", user.Avatar)
	})

	t.Run("missing file", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAvatar(context.Background(), newID(), "")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("upload failure", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.uploader.EXPECT().Upload(ctx, "/tmp/new.png").Return("", assert.AnError)

		_, err := fx.service.UpdateAvatar(ctx, newID(), "/tmp/new.png")

		assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	})
}

func TestUserService_UpdateCoverImage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := newID()

	fx.uploader.EXPECT().Upload(ctx, "/tmp/cover.png").Return("https://cdn/cover.png", nil)
	fx.userRepo.EXPECT().UpdateFields(ctx, userID, repository.UserUpdate{CoverImage: ptr("https://cdn/cover.png")}).
		Return(&entity.User{ID: userID, CoverImage: "https://cdn/cover.png"}, nil)

	user, err := fx.service.UpdateCoverImage(ctx, userID, "/tmp/cover.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/cover.png", user.CoverImage)
}
