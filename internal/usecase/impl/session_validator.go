package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
)

type sessionValidator struct {
	provider service.AuthProvider
	cookies  *SessionCookies
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSessionValidator creates a validator that asks the provider once per call.
func NewSessionValidator(
	provider service.AuthProvider,
	cookies *SessionCookies,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionValidator {
	return &sessionValidator{
		provider: provider,
		cookies:  cookies,
		timeout:  cfg.AuthProvider.Timeout,
		logger:   logger,
	}
}

func (v *sessionValidator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Validate fails closed: a provider error or timeout yields an unauthenticated
// result carrying the error, and the presented cookies are left untouched.
func (v *sessionValidator) Validate(ctx context.Context, cookies []*http.Cookie) *usecase.SessionResult {
	tokens := v.cookies.Read(cookies)
	if tokens.IsEmpty() {
		return &usecase.SessionResult{}
	}

	callCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	result, err := v.provider.GetCurrentUser(callCtx, tokens)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			err = errors.Wrapf(err, "auth provider timed out after %s", v.timeout)
		}
		v.log(ctx).Warn("Session verification failed, treating as unauthenticated", slog.Any("error", err))

		return &usecase.SessionResult{Err: err}
	}

	if result == nil || result.User == nil {
		return &usecase.SessionResult{Cookies: v.cookies.Clear()}
	}

	out := &usecase.SessionResult{
		Authenticated: true,
		User:          result.User,
	}
	if !result.Rotated.IsEmpty() {
		out.Cookies = v.cookies.Write(result.Rotated)
	}

	return out
}
