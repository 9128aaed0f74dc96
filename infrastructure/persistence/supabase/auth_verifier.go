package supabase

import (
	"context"

	"polyamgraph/pkg/auth"
	pkgerrors "polyamgraph/pkg/errors"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// GoTrueVerifier validates access tokens by asking GoTrue for the user
// behind them. It is the fallback path when no project JWT secret is
// configured for local validation.
//
// The GoTrue client offers no context support, so the round trip runs
// in a goroutine and the caller's deadline is enforced with a select.
// An unresponsive auth service therefore cannot hang a request beyond
// the configured timeout.
type GoTrueVerifier struct {
	client *supa.Client
	logger *zap.Logger
}

// NewGoTrueVerifier creates a remote token verifier
func NewGoTrueVerifier(client *supa.Client, logger *zap.Logger) *GoTrueVerifier {
	return &GoTrueVerifier{
		client: client,
		logger: logger,
	}
}

// Verify implements auth.TokenVerifier
func (v *GoTrueVerifier) Verify(ctx context.Context, token string) (*auth.UserContext, error) {
	type outcome struct {
		user *auth.UserContext
		err  error
	}

	// Buffered so a late result does not leak the goroutine.
	done := make(chan outcome, 1)

	go func() {
		user, err := v.client.Auth.WithToken(token).GetUser()
		if err != nil {
			done <- outcome{err: err}
			return
		}
		done <- outcome{user: &auth.UserContext{
			UserID: user.ID.String(),
			Email:  user.Email,
			Role:   user.Role,
		}}
	}()

	select {
	case <-ctx.Done():
		v.logger.Warn("Auth check abandoned", zap.Error(ctx.Err()))
		return nil, pkgerrors.NewTimeoutError("auth check")
	case res := <-done:
		if res.err != nil {
			v.logger.Debug("Token rejected by GoTrue", zap.Error(res.err))
			return nil, pkgerrors.NewUnauthorizedError("invalid token")
		}
		return res.user, nil
	}
}
