package impl

import (
	"context"
	"testing"

	"videotube/internal/domain/entity"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/domain/service"
	"videotube/internal/errors"
	mockRepo "videotube/internal/mocks/repository"
	mockSvc "videotube/internal/mocks/service"
	"videotube/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewSessionService(SessionServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:          srv,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
	}
}

func refreshClaimsFor(userID string) *service.RefreshClaims {
	return &service.RefreshClaims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}
}

func TestSessionService_IssueTokenPair_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID(), Username: "alice", FullName: "Alice", Email: "alice@example.com"}

	fx.tokenService.EXPECT().GenerateTokens(service.TokenSubject{
		UserID:   user.ID,
		Username: "alice",
		FullName: "Alice",
		Email:    "alice@example.com",
	}).Return("access", "refresh", nil)
	fx.refreshTokenRepo.EXPECT().SetRefreshToken(ctx, user.ID, "refresh").Return(nil)

	pair, err := fx.service.IssueTokenPair(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestSessionService_IssueTokenPair_SigningFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID()}

	fx.tokenService.EXPECT().GenerateTokens(service.TokenSubject{UserID: user.ID}).Return("", "", assert.AnError)

	_, err := fx.service.IssueTokenPair(ctx, user)

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestSessionService_VerifyAccessToken(t *testing.T) {
	t.Run("valid token yields identity", func(t *testing.T) {
		fx := createTestSessionService(t)
		userID := newID()

		fx.tokenService.EXPECT().ParseAccessToken("token").Return(&service.AccessClaims{
			Username:         "alice",
			FullName:         "Alice",
			Email:            "alice@example.com",
			Type:             service.TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		}, nil)

		identity, err := fx.service.VerifyAccessToken(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, &entity.Identity{
			UserID:   userID,
			Username: "alice",
			FullName: "Alice",
			Email:    "alice@example.com",
		}, identity)
	})

	t.Run("expired token keeps its reason", func(t *testing.T) {
		fx := createTestSessionService(t)

		fx.tokenService.EXPECT().ParseAccessToken("token").
			Return(nil, errors.Wrap(domainerrors.ErrTokenExpired, "token is expired"))

		_, err := fx.service.VerifyAccessToken(context.Background(), "token")

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})
}

func TestSessionService_RotateRefreshToken_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID(), Username: "alice", RefreshToken: "current"}

	fx.tokenService.EXPECT().ParseRefreshToken("current").Return(refreshClaimsFor(user.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(service.TokenSubject{UserID: user.ID, Username: "alice"}).
		Return("new-access", "new-refresh", nil)
	fx.refreshTokenRepo.EXPECT().SetRefreshToken(ctx, user.ID, "new-refresh").Return(nil)

	pair, err := fx.service.RotateRefreshToken(ctx, "current")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestSessionService_RotateRefreshToken_Superseded(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID(), RefreshToken: "newer"}

	fx.tokenService.EXPECT().ParseRefreshToken("older").Return(refreshClaimsFor(user.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.RotateRefreshToken(ctx, "older")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
}

func TestSessionService_RotateRefreshToken_AfterLogout(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: newID()}

	fx.tokenService.EXPECT().ParseRefreshToken("token").Return(refreshClaimsFor(user.ID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.RotateRefreshToken(ctx, "token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
}

func TestSessionService_RotateRefreshToken_UnknownUser(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	userID := newID()

	fx.tokenService.EXPECT().ParseRefreshToken("token").Return(refreshClaimsFor(userID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RotateRefreshToken(ctx, "token")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_RotateRefreshToken_InvalidSignature(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokenService.EXPECT().ParseRefreshToken("forged").
		Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "signature is invalid"))

	_, err := fx.service.RotateRefreshToken(context.Background(), "forged")

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestSessionService_ClearToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		userID := newID()

		fx.refreshTokenRepo.EXPECT().ClearRefreshToken(ctx, userID).Return(nil)

		assert.NoError(t, fx.service.ClearToken(ctx, userID))
	})

	t.Run("invalid id is a validation error", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()

		fx.refreshTokenRepo.EXPECT().ClearRefreshToken(ctx, "bad").Return(repository.ErrInvalidID)

		err := fx.service.ClearToken(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
