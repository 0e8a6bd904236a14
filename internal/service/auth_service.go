package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auditpro/internal/config"
	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService verifies bearer tokens issued by the identity provider.
type AuthService interface {
	VerifyToken(ctx context.Context, tokenString string) (domain.Actor, error)
	// IssueToken signs a token the way the identity provider does. It backs
	// the development CLI only.
	IssueToken(userID string, role domain.Role) (string, error)
	GetProfile(ctx context.Context, actor domain.Actor) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	profileRepo domain.ProfileRepository
	authCfg     config.AuthConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(profileRepo domain.ProfileRepository, authCfg config.AuthConfig) (AuthService, error) {
	if len(authCfg.JWTSecret) < 32 {
		return nil, errors.New("jwt secret must be at least 32 bytes long")
	}
	return &authServiceImpl{profileRepo: profileRepo, authCfg: authCfg}, nil
}

func (s *authServiceImpl) VerifyToken(ctx context.Context, tokenString string) (domain.Actor, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.authCfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.authCfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.authCfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return domain.Actor{}, ErrInvalidJWTToken
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return domain.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidJWTToken, claims.Role)
	}
	return domain.Actor{UserID: claims.Subject, Role: role}, nil
}

func (s *authServiceImpl) IssueToken(userID string, role domain.Role) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return "", fmt.Errorf("unknown role %q", role)
	}

	ttl := s.authCfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := time.Now()
	claims := dto.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.authCfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JWTSecret))
}

func (s *authServiceImpl) GetProfile(ctx context.Context, actor domain.Actor) (*dto.ProfileResponse, error) {
	if actor.UserID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}
	profile, err := s.profileRepo.GetProfileByID(ctx, actor.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if profile == nil {
		return nil, domain.NewNotFoundError("profile not found")
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}
