// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"clientverse/config"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// minSecretLength is the shortest HS256 secret accepted.
const minSecretLength = 16

// Claims are the claims carried by HS256 development tokens.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// JWTService verifies and issues HS256 tokens whose subject is the user ID.
type JWTService struct {
	secret []byte // Secret key for signing tokens.
	issuer string // Expected and issued "iss" claim; empty skips the check.
}

// NewJWTService is the constructor for JWTService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || len(cfg.Auth.JWTSecret) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}

	return &JWTService{
		secret: []byte(cfg.Auth.JWTSecret),
		issuer: cfg.Auth.Issuer,
	}, nil
}

// VerifyIDToken checks the signature, expiry and issuer of a token and returns its subject.
func (s *JWTService) VerifyIDToken(_ context.Context, idToken string) (*service.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(idToken, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return &service.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// IssueToken signs a token for userID that expires after ttl.
func (s *JWTService) IssueToken(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,                           // Subject (who the token is for)
			Issuer:    s.issuer,                         // Issuer
			IssuedAt:  jwt.NewNumericDate(now),          // Issued At
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
