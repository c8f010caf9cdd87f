package errors

import (
	"net/http"
	"testing"

	"videotube/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageStillMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithMessage("All fields are mandatory"), "register")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrConflict))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "All fields are mandatory", appErr.Message())
}

func TestTokenErrorsAreDistinct(t *testing.T) {
	tokenErrs := []*BaseError{ErrTokenMissing, ErrTokenInvalid, ErrTokenExpired, ErrRefreshTokenReused}

	for i, a := range tokenErrs {
		assert.Equal(t, http.StatusUnauthorized, a.HTTPCode())
		for j, b := range tokenErrs {
			assert.Equal(t, i == j, errors.Is(a, b), "%s vs %s", a.ErrorCode(), b.ErrorCode())
		}
	}
}

func TestTaxonomyStatuses(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{err: ErrValidationFailed, want: http.StatusBadRequest},
		{err: ErrUnauthorized, want: http.StatusUnauthorized},
		{err: ErrForbidden, want: http.StatusForbidden},
		{err: ErrNotFound, want: http.StatusNotFound},
		{err: ErrConflict, want: http.StatusConflict},
		{err: ErrInternalError, want: http.StatusInternalServerError},
		{err: ErrUserAlreadyExists, want: http.StatusConflict},
		{err: ErrCommentOwnership, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create user", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
