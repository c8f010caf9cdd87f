// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"videotube/config"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/service"
	"videotube/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	tokenCfg := cfg.Token
	if tokenCfg.AccessSecret == "" || tokenCfg.RefreshSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if tokenCfg.AccessSecret == tokenCfg.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if tokenCfg.AccessExpiry <= 0 || tokenCfg.RefreshExpiry <= 0 {
		return nil, errors.New("jwt expiries must be positive")
	}

	return &jwtService{
		accessSecret:  tokenCfg.AccessSecret,
		refreshSecret: tokenCfg.RefreshSecret,
		accessTTL:     tokenCfg.AccessExpiry,
		refreshTTL:    tokenCfg.RefreshExpiry,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for the subject.
func (s *jwtService) GenerateTokens(subject service.TokenSubject) (accessToken string, refreshToken string, err error) {
	if subject.UserID == "" {
		return "", "", errors.New("token subject requires a user id")
	}

	now := s.now()

	accessToken, err = sign(&service.AccessClaims{
		Username: subject.Username,
		FullName: subject.FullName,
		Email:    subject.Email,
		Type:     service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	// jti keeps refresh tokens issued within the same second distinct.
	refreshToken, err = sign(&service.RefreshClaims{
		Type: service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parse(tokenString, s.accessSecret, claims); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeAccess || claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "not an access token")
	}

	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (s *jwtService) ParseRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parse(tokenString, s.refreshSecret, claims); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeRefresh || claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "not a refresh token")
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) parse(tokenString, secret string, claims jwt.Claims) error {
	if strings.TrimSpace(tokenString) == "" {
		return errors.WithStack(domainerrors.ErrTokenMissing)
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	return nil
}

func sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
