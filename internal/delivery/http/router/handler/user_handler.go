// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"videotube/config"
	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/delivery/http/middleware"
	"videotube/internal/delivery/http/response"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ChannelUC usecase.ChannelUsecase
	Stager    *FileStager
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler serves the account, session and channel endpoints.
type UserHandler struct {
	userUC    usecase.UserUsecase
	channelUC usecase.ChannelUsecase
	stager    *FileStager
	cfg       *config.Config
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		channelUC: params.ChannelUC,
		stager:    params.Stager,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// RegisterRequest is the multipart form of the registration endpoint.
type RegisterRequest struct {
	FullName string `form:"fullName" validate:"max=100"`
	Email    string `form:"email" validate:"max=254"`
	Username string `form:"username" validate:"max=50"`
	Password string `form:"password" validate:"max=72"`
}

// LoginRequest identifies the account by username or email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"max=72"`
}

// RefreshRequest carries the refresh token when the cookie is not available.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// ChangePasswordRequest is the body of the change-password endpoint.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" validate:"max=72"`
}

// UpdateAccountRequest lists the profile fields to replace. Omitted fields are kept.
type UpdateAccountRequest struct {
	FullName *string `json:"fullName" validate:"omitnil,max=100"`
	Email    *string `json:"email" validate:"omitnil,max=254"`
	Username *string `json:"username" validate:"omitnil,max=50"`
}

// LoginResponse is the payload of the login endpoint.
type LoginResponse struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenResponse is the payload of the refresh endpoint.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register handles the multipart registration request with its avatar and optional cover image.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	avatarPath, err := h.stager.Stage(c, "avatar")
	if err != nil {
		return errors.WithStack(err)
	}
	coverPath, err := h.stager.Stage(c, "coverImage")
	if err != nil {
		h.stager.Discard(avatarPath)

		return errors.WithStack(err)
	}
	defer h.stager.Discard(avatarPath, coverPath)

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:               req.Email,
		Username:            req.Username,
		FullName:            req.FullName,
		Password:            req.Password,
		AvatarLocalPath:     avatarPath,
		CoverImageLocalPath: coverPath,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles the login request and sets both session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, LoginResponse{
		User:         output.User,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "User logged in successfully")
}

// Logout revokes the stored refresh token and clears both session cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "User logged out")
}

// RefreshToken rotates the refresh token taken from the cookie or the request body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err != nil {
			return errors.WithStack(err)
		}
		token = req.RefreshToken
	}

	pair, err := h.userUC.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, pair.AccessToken, pair.RefreshToken)

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

// ChangePassword handles the password change of the caller.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), identity.UserID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// GetCurrentUser returns the caller's account.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetCurrentUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccountDetails replaces the profile fields present in the body.
func (h *UserHandler) UpdateAccountDetails(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.UpdateAccountDetails(c.Request().Context(), identity.UserID, &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account details updated successfully")
}

// UpdateAvatar replaces the caller's avatar with the uploaded `avatar` file.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, "avatar", h.userUC.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage replaces the caller's cover image with the uploaded `coverImage` file.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, "coverImage", h.userUC.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, userID, localPath string) (*entity.User, error)

func (h *UserHandler) replaceImage(c echo.Context, field string, update imageUpdater, message string) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	path, err := h.stager.Stage(c, field)
	if err != nil {
		return errors.WithStack(err)
	}
	defer h.stager.Discard(path)

	user, err := update(c.Request().Context(), identity.UserID, path)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, message)
}

// GetChannelProfile returns the public profile of a channel with its subscription counts.
func (h *UserHandler) GetChannelProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.channelUC.GetChannelProfile(c.Request().Context(), c.Param("username"), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "User channel fetched successfully")
}

// GetWatchHistory returns the caller's watched videos, most recent first.
func (h *UserHandler) GetWatchHistory(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	history, err := h.channelUC.GetWatchHistory(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Watch history fetched successfully")
}

func (h *UserHandler) setSessionCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(h.sessionCookie(middleware.AccessTokenCookie, accessToken, h.cfg.Token.AccessExpiry))
	c.SetCookie(h.sessionCookie(RefreshTokenCookie, refreshToken, h.cfg.Token.RefreshExpiry))
}

func (h *UserHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		cookie := h.sessionCookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}

func (h *UserHandler) sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// currentIdentity returns the caller resolved by the session middleware.
func currentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrTokenMissing)
	}

	return identity, nil
}
