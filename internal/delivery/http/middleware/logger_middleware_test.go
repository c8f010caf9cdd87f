package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"videotube/config"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("debug off logs nothing and passes the error through", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
		c, _ := newEchoContext(httptest.NewRequest(http.MethodGet, "/health", nil))

		err := m.Handle(func(c echo.Context) error {
			return domainerrors.ErrNotFound
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("debug on logs the final status", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

		e := echo.New()
		e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/videos/abc?x=1", nil), rec)

		err := m.Handle(func(c echo.Context) error {
			return errors.WithStack(domainerrors.ErrVideoNotFound)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "HTTP Request", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, float64(http.StatusNotFound), entry["status"])
		assert.Equal(t, "/api/v1/videos/abc", entry["uri"])
		assert.Equal(t, "x=1", entry["query"])
	})
}
