package usecase

import (
	"context"

	"videotube/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// The image paths point at locally staged uploads.
type RegisterUserInput struct {
	Email               string
	Username            string
	FullName            string
	Password            string
	AvatarLocalPath     string
	CoverImageLocalPath string
}

// LoginInput identifies the account by username or email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change the caller's password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateAccountInput lists the profile fields to replace. Nil fields are left untouched.
type UpdateAccountInput struct {
	FullName *string
	Email    *string
	Username *string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user with a fresh token pair.
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account-related business operations.
// Every returned user is stripped of credential fields.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, userID string) error
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) error
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateAccountDetails(ctx context.Context, userID string, input *UpdateAccountInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*entity.User, error)
}
