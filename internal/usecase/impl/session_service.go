package impl

import (
	"context"
	"log/slog"

	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/domain/service"
	"videotube/internal/errors"
	"videotube/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueTokenPair signs a new pair and overwrites the stored refresh token,
// which invalidates any previously issued refresh token of the user.
func (srv *sessionService) IssueTokenPair(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(service.TokenSubject{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithMessage("Something went wrong while generating tokens"), err.Error())
	}

	if err := srv.refreshTokenRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to store refresh token")
	}

	srv.log(ctx).Debug("Issued token pair", slog.String("userID", user.ID))

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken checks signature, expiry and token type only.
func (srv *sessionService) VerifyAccessToken(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.ParseAccessToken(token)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		FullName: claims.FullName,
		Email:    claims.Email,
	}, nil
}

// RotateRefreshToken accepts only the refresh token currently stored for the user.
// A valid but superseded token is reported as reused.
func (srv *sessionService) RotateRefreshToken(ctx context.Context, presented string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ParseRefreshToken(presented)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrInvalidID) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load refresh token owner")
	}

	if user.RefreshToken == "" || user.RefreshToken != presented {
		srv.log(ctx).Warn("Rejected superseded refresh token", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenReused)
	}

	pair, err := srv.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	srv.log(ctx).Info("Rotated refresh token", slog.String("userID", user.ID))

	return pair, nil
}

// ClearToken drops the stored refresh token.
func (srv *sessionService) ClearToken(ctx context.Context, userID string) error {
	if err := srv.refreshTokenRepo.ClearRefreshToken(ctx, userID); err != nil {
		return translateRepoError(err, nil, "failed to clear refresh token")
	}

	return nil
}
