package repository

import (
	"context"

	"videotube/internal/domain/entity"
	"videotube/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate lists the account fields that can be replaced. Nil fields are left untouched.
type UserUpdate struct {
	FullName   *string
	Email      *string
	Username   *string
	Avatar     *string
	CoverImage *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Email == nil && u.Username == nil && u.Avatar == nil && u.CoverImage == nil
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user, including credential fields, by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the user matching either identifier. Empty identifiers are ignored.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether any user already holds the username or the email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// UpdateFields applies a partial update and returns the user without credential fields.
	UpdateFields(ctx context.Context, id string, update UserUpdate) (*entity.User, error)

	// GetWatchHistory returns the user's watched videos, most recent first, with their owners embedded.
	GetWatchHistory(ctx context.Context, id string) ([]*entity.WatchedVideo, error)

	// PushWatchHistory moves the video to the front of the user's watch history.
	PushWatchHistory(ctx context.Context, userID, videoID string) error
}
