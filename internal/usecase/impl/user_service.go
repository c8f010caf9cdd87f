package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/domain/service"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	sessions usecase.SessionUsecase
	hasher   service.PasswordHasher
	uploader service.Uploader
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Sessions usecase.SessionUsecase
	Hasher   service.PasswordHasher
	Uploader service.Uploader
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		sessions: params.Sessions,
		hasher:   params.Hasher,
		uploader: params.Uploader,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, uploads the images and creates the account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if isBlank(input.FullName, input.Email, input.Username, input.Password) {
		return nil, validationError("All fields are mandatory")
	}

	email := normalizeIdentifier(input.Email)
	username := normalizeIdentifier(input.Username)
	if !emailPattern.MatchString(email) {
		return nil, validationError("Invalid email address")
	}

	exists, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		srv.log(ctx).Warn("Registration conflict", slog.String("username", username), slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	if strings.TrimSpace(input.AvatarLocalPath) == "" {
		return nil, validationError("Avatar file is required")
	}

	avatarURL, err := srv.uploader.Upload(ctx, input.AvatarLocalPath)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.Any("error", err))

		return nil, errors.Wrap(validationError("Avatar file is required"), err.Error())
	}

	var coverImageURL string
	if strings.TrimSpace(input.CoverImageLocalPath) != "" {
		coverImageURL, err = srv.uploader.Upload(ctx, input.CoverImageLocalPath)
		if err != nil {
			srv.log(ctx).Error("Failed to upload cover image", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Avatar:       avatarURL,
		CoverImage:   coverImageURL,
		WatchHistory: []string{},
		Password:     hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, err.Error())
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	created, err := srv.userRepo.FindByID(ctx, newUser.ID)
	if err != nil {
		return nil, errors.Wrap(
			domainerrors.ErrInternalError.WithMessage("Something went wrong while registering the user"),
			err.Error(),
		)
	}

	srv.log(ctx).Info("Registered user", slog.String("userID", created.ID))

	return created.Sanitized(), nil
}

// Login authenticates by username or email and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := normalizeIdentifier(input.Username)
	email := normalizeIdentifier(input.Email)
	if username == "" && email == "" {
		return nil, validationError("Username or email is required")
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("email", email), slog.Any("error", err))

		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("userID", user.ID), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.sessions.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		User:         user.Sanitized(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout closes the caller's session.
func (srv *userService) Logout(ctx context.Context, userID string) error {
	if err := srv.sessions.ClearToken(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	srv.log(ctx).Debug("User logged out", slog.String("userID", userID))

	return nil
}

// RefreshToken rotates the caller's refresh token.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	pair, err := srv.sessions.RotateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh token")
	}

	return pair, nil
}

// ChangePassword replaces the password after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, userID string, input *usecase.ChangePasswordInput) error {
	if isBlank(input.OldPassword, input.NewPassword) {
		return validationError("Old and new password are required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return translateRepoError(err, domainerrors.ErrUserNotFound, "failed to load user")
	}

	if !srv.hasher.Check(input.OldPassword, user.Password) {
		srv.log(ctx).Warn("Password change rejected", slog.String("userID", userID))

		return errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return translateRepoError(err, domainerrors.ErrUserNotFound, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID))

	return nil
}

// GetCurrentUser returns the caller's account.
func (srv *userService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to load current user")
	}

	return user.Sanitized(), nil
}

// UpdateAccountDetails applies a partial update of the profile fields.
func (srv *userService) UpdateAccountDetails(ctx context.Context, userID string, input *usecase.UpdateAccountInput) (*entity.User, error) {
	update := repository.UserUpdate{}

	if input.FullName != nil {
		fullName := strings.TrimSpace(*input.FullName)
		if fullName == "" {
			return nil, validationError("Full name cannot be empty")
		}
		update.FullName = &fullName
	}
	if input.Email != nil {
		email := normalizeIdentifier(*input.Email)
		if !emailPattern.MatchString(email) {
			return nil, validationError("Invalid email address")
		}
		update.Email = &email
	}
	if input.Username != nil {
		username := normalizeIdentifier(*input.Username)
		if username == "" {
			return nil, validationError("Username cannot be empty")
		}
		update.Username = &username
	}

	if update.IsEmpty() {
		return nil, validationError("At least one field is required")
	}

	user, err := srv.userRepo.UpdateFields(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, err.Error())
		}

		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to update account details")
	}

	srv.log(ctx).Info("Account details updated", slog.String("userID", userID))

	return user.Sanitized(), nil
}

// UpdateAvatar uploads a new avatar and stores its URL.
func (srv *userService) UpdateAvatar(ctx context.Context, userID, localPath string) (*entity.User, error) {
	if strings.TrimSpace(localPath) == "" {
		return nil, validationError("Avatar file is missing")
	}

	return srv.replaceImage(ctx, userID, localPath, func(update *repository.UserUpdate, url string) {
		update.Avatar = &url
	})
}

// UpdateCoverImage uploads a new cover image and stores its URL.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*entity.User, error) {
	if strings.TrimSpace(localPath) == "" {
		return nil, validationError("Cover image file is missing")
	}

	return srv.replaceImage(ctx, userID, localPath, func(update *repository.UserUpdate, url string) {
		update.CoverImage = &url
	})
}

func (srv *userService) replaceImage(
	ctx context.Context,
	userID, localPath string,
	apply func(update *repository.UserUpdate, url string),
) (*entity.User, error) {
	url, err := srv.uploader.Upload(ctx, localPath)
	if err != nil {
		srv.log(ctx).Error("Failed to upload image", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	update := repository.UserUpdate{}
	apply(&update, url)

	user, err := srv.userRepo.UpdateFields(ctx, userID, update)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to store image url")
	}

	return user.Sanitized(), nil
}
