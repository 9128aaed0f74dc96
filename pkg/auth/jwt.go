package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification errors
var (
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
)

// TokenVerifier resolves a bearer token into a user context. The local
// implementation checks the Supabase project JWT secret; the remote one
// (infrastructure/persistence/supabase) asks GoTrue.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*UserContext, error)
}

// Claims are the Supabase access-token claims this service cares about.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig configures the local token verifier.
type JWTConfig struct {
	SecretKey string
	Audience  string
}

// JWTVerifier validates Supabase access tokens locally with the project
// JWT secret (HS256).
type JWTVerifier struct {
	secret   []byte
	audience string
}

// NewJWTVerifier creates a new local token verifier
func NewJWTVerifier(cfg JWTConfig) (*JWTVerifier, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	audience := cfg.Audience
	if audience == "" {
		// Supabase issues access tokens with this audience
		audience = "authenticated"
	}
	return &JWTVerifier{
		secret:   []byte(cfg.SecretKey),
		audience: audience,
	}, nil
}

// Verify implements TokenVerifier
func (v *JWTVerifier) Verify(_ context.Context, token string) (*UserContext, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(v.audience),
		jwt.WithLeeway(30*time.Second),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}

	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &UserContext{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
