package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"polyamgraph/pkg/auth"
	"polyamgraph/pkg/common"
	pkgerrors "polyamgraph/pkg/errors"

	"go.uber.org/zap"
)

// AuthConfig configures the authentication middleware
type AuthConfig struct {
	Verifier              auth.TokenVerifier
	Timeout               time.Duration
	IPRequestsPerMinute   int
	UserRequestsPerMinute int
}

// Authenticate validates the bearer token on every request, enforces IP
// and per-user rate limits, and injects the user context for handlers.
// Token verification is bounded by the configured timeout so an
// unresponsive auth backend cannot hang requests indefinitely.
func Authenticate(cfg AuthConfig, logger *zap.Logger) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(cfg.IPRequestsPerMinute)
	userLimiter := auth.NewUserRateLimiter(cfg.UserRequestsPerMinute)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, _ := ipLimiter.Allow(r.Context(), clientIP)
			if !allowed {
				common.RespondError(w, http.StatusTooManyRequests,
					string(pkgerrors.ErrorTypeRateLimit), "rate limit exceeded")
				return
			}

			token := extractToken(r)
			if token == "" {
				respondUnauthorized(w, "missing authentication token")
				return
			}

			verifyCtx, cancel := context.WithTimeout(r.Context(), timeout)
			user, err := cfg.Verifier.Verify(verifyCtx, token)
			cancel()
			if err != nil {
				logger.Debug("Token verification failed",
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				switch {
				case err == auth.ErrExpiredToken:
					respondUnauthorized(w, "token has expired")
				case pkgerrors.IsType(err, pkgerrors.ErrorTypeTimeout):
					common.RespondError(w, http.StatusGatewayTimeout,
						string(pkgerrors.ErrorTypeTimeout), "auth check timed out")
				default:
					respondUnauthorized(w, "invalid token")
				}
				return
			}

			allowed, _ = userLimiter.Allow(r.Context(), user.UserID)
			if !allowed {
				common.RespondError(w, http.StatusTooManyRequests,
					string(pkgerrors.ErrorTypeRateLimit), "user rate limit exceeded")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// getClientIP extracts the client IP address
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	common.RespondError(w, http.StatusUnauthorized,
		string(pkgerrors.ErrorTypeUnauthorized), message)
}
