package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "wrapped app error keeps its status and code",
			err:         errors.Wrap(domainerrors.ErrUserAlreadyExists, "register"),
			wantStatus:  http.StatusConflict,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "User with email or username already exists",
		},
		{
			name:        "copied app error keeps its custom message",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("All fields are required")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "All fields are required",
		},
		{
			name:        "token errors are 401 with distinct codes",
			err:         errors.WithStack(domainerrors.ErrTokenExpired),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "TOKEN_EXPIRED",
			wantMessage: "Token has expired",
		},
		{
			name:        "database errors are 500",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert user"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Database operation failed",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "echo http error without string message",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error hides internals",
			err:         errors.New("driver exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil))

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, float64(tt.wantStatus), body["statusCode"])
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantCode, body["errorCode"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_ValidationDetails(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newEchoContext(httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil))

	m.HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("password is required"), c)

	body := decodeBody(t, rec)
	assert.Equal(t, "password is required", body["details"])
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newEchoContext(httptest.NewRequest(http.MethodGet, "/", nil))
	_ = c.String(http.StatusOK, "done")

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
