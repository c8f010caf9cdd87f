package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"videotube/config"
	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/delivery/http/validator"
	"videotube/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testUserID = "665f1c2e8b3e4a0012345678"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.AccessExpiry = time.Hour
	cfg.Token.RefreshExpiry = 24 * time.Hour
	cfg.Cookie.Secure = true
	cfg.Cookie.Domain = "videotube.test"
	cfg.Upload.TempDir = t.TempDir()
	cfg.Upload.MaxFileSize = 1 << 10

	return cfg
}

func newTestStager(t *testing.T, cfg *config.Config) *FileStager {
	t.Helper()

	stager, err := NewFileStager(FileStagerParams{Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)

	return stager
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type formFile struct {
	field    string
	filename string
	content  string
}

func newMultipartContext(t *testing.T, e *echo.Echo, method, target string, fields map[string]string, files ...formFile) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context) {
	deliverycontext.SetIdentity(c, &entity.Identity{UserID: testUserID, Username: "alice"})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
