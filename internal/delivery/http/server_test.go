package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"videotube/config"
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/delivery/http/router"
	"videotube/internal/delivery/http/router/handler"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"
	mockusecase "videotube/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo      *echo.Echo
	sessions  *mockusecase.MockSessionUsecase
	userUC    *mockusecase.MockUserUsecase
	channelUC *mockusecase.MockChannelUsecase
	commentUC *mockusecase.MockCommentUsecase
	videoUC   *mockusecase.MockVideoUsecase
}

func createTestServer(t *testing.T) *serverFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Upload.TempDir = t.TempDir()
	cfg.Upload.MaxFileSize = 1 << 20

	fx := &serverFixtures{
		sessions:  mockusecase.NewMockSessionUsecase(t),
		userUC:    mockusecase.NewMockUserUsecase(t),
		channelUC: mockusecase.NewMockChannelUsecase(t),
		commentUC: mockusecase.NewMockCommentUsecase(t),
		videoUC:   mockusecase.NewMockVideoUsecase(t),
	}

	stager, err := handler.NewFileStager(handler.FileStagerParams{Config: cfg, Logger: logger})
	require.NoError(t, err)

	srv, err := NewServer(ServerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				UserUC: fx.userUC, ChannelUC: fx.channelUC, Stager: stager, Config: cfg, Logger: logger,
			}),
			CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: fx.commentUC, Logger: logger}),
			VideoHandler:   handler.NewVideoHandler(handler.VideoHandlerParams{VideoUC: fx.videoUC, Stager: stager, Logger: logger}),
			HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Sessions: fx.sessions}),
			RateLimiter:    middleware.NewRateLimitMiddleware(cfg, logger),
		},
	})
	require.NoError(t, err)
	fx.echo = srv.(*httpServer).server

	return fx
}

func (fx *serverFixtures) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestServer_Routes(t *testing.T) {
	fx := createTestServer(t)

	var got []string
	for _, r := range fx.echo.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)

	want := []string{
		"DELETE /api/v1/comments/c/:commentId",
		"GET /api/v1/comments/:videoId",
		"GET /api/v1/users/c/:username",
		"GET /api/v1/users/current-user",
		"GET /api/v1/users/history",
		"GET /api/v1/videos/:videoId",
		"GET /api/v1/videos/channel/:userId",
		"GET /health",
		"PATCH /api/v1/users/avatar",
		"PATCH /api/v1/users/cover-image",
		"PATCH /api/v1/users/update-account",
		"PATCH /api/v1/videos/toggle/publish/:videoId",
		"POST /api/v1/comments/:videoId",
		"POST /api/v1/users/change-password",
		"POST /api/v1/users/login",
		"POST /api/v1/users/logout",
		"POST /api/v1/users/refresh-token",
		"POST /api/v1/users/register",
		"POST /api/v1/videos",
		"POST /api/v1/videos/:videoId/view",
	}
	for _, route := range want {
		assert.Contains(t, got, route)
	}
}

func TestServer_SecuredRouteWithoutToken(t *testing.T) {
	fx := createTestServer(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_MISSING", body["errorCode"])
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_SecuredRouteWithToken(t *testing.T) {
	fx := createTestServer(t)
	identity := &entity.Identity{UserID: "665f1c2e8b3e4a0012345678", Username: "alice"}
	fx.sessions.EXPECT().VerifyAccessToken(mock.Anything, "good").Return(identity, nil).Once()
	fx.userUC.EXPECT().GetCurrentUser(mock.Anything, identity.UserID).
		Return(&entity.User{ID: identity.UserID, Username: "alice"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec, body := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "alice", body["data"].(map[string]any)["username"])
}

func TestServer_UsecaseErrorEnvelope(t *testing.T) {
	fx := createTestServer(t)
	fx.sessions.EXPECT().VerifyAccessToken(mock.Anything, "good").
		Return(&entity.Identity{UserID: "665f1c2e8b3e4a0012345678"}, nil).Once()
	fx.commentUC.EXPECT().DeleteComment(mock.Anything, "c1", "665f1c2e8b3e4a0012345678").
		Return(errors.Wrap(domainerrors.ErrCommentOwnership, "delete comment")).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/c/c1", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "good"})
	rec, body := fx.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "COMMENT_OWNERSHIP_VIOLATION", body["errorCode"])
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body["errorCode"])
}

func TestServer_UnknownUsersRouteIsNotAuthenticated(t *testing.T) {
	fx := createTestServer(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/users/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body["errorCode"])
}

func TestMultipartBodyLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload.MaxFileSize = 100

	assert.Equal(t, "1048776", multipartBodyLimit(cfg))
}
