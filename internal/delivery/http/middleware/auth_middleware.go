package middleware

import (
	"strings"

	deliverycontext "videotube/internal/delivery/context"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "accessToken"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
}

// AuthMiddleware resolves the caller from the access token.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions}
}

// Authenticate verifies the access token from the accessToken cookie or a Bearer
// header and stores the caller's identity for the handlers. Requests without a
// valid token never reach the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractAccessToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrTokenMissing)
		}

		identity, err := m.sessions.VerifyAccessToken(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

func extractAccessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}
