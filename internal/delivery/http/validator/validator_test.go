package validator

import (
	"testing"

	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type publishRequest struct {
	Title    string  `form:"title" validate:"required,max=120"`
	Duration float64 `form:"duration" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr bool
		message string
	}{
		{
			name:  "valid login by username",
			input: &loginRequest{Username: "alice", Password: "secret"},
		},
		{
			name:  "valid login by email",
			input: &loginRequest{Email: "alice@example.com", Password: "secret"},
		},
		{
			name:    "missing identifier",
			input:   &loginRequest{Password: "secret"},
			wantErr: true,
			message: "username or email is required",
		},
		{
			name:    "missing password uses json name",
			input:   &loginRequest{Username: "alice"},
			wantErr: true,
			message: "password is required",
		},
		{
			name:    "form names and numeric bounds",
			input:   &publishRequest{Title: "clip", Duration: -1},
			wantErr: true,
			message: "duration must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
