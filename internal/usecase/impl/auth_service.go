package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
)

type authService struct {
	provider service.AuthProvider
	cookies  *SessionCookies
	routes   *config.RoutesConfig
	timeout  time.Duration
	logger   *slog.Logger
}

// NewAuthService creates the dashboard sign in flow.
func NewAuthService(
	provider service.AuthProvider,
	cookies *SessionCookies,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		provider: provider,
		cookies:  cookies,
		routes:   cfg.Routes,
		timeout:  cfg.AuthProvider.Timeout,
		logger:   logger,
	}
}

func (s *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *authService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.provider.SignIn(callCtx, email, password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			s.log(ctx).Info("Rejected dashboard sign in", slog.String("email", email))

			return nil, err
		}
		s.log(ctx).Error("Auth provider sign in failed", slog.Any("error", err))

		return nil, domainerrors.ErrAuthProviderUnavailable
	}

	if result == nil || result.User == nil || result.Rotated.IsEmpty() {
		return nil, domainerrors.ErrAuthProviderUnavailable.WithDetails("provider returned no session")
	}

	s.log(ctx).Info("Dashboard sign in", slog.String("user_id", result.User.ID))

	return &usecase.LoginResult{
		User:     result.User,
		Cookies:  s.cookies.Write(result.Rotated),
		Redirect: s.routes.Dashboard,
	}, nil
}

// Logout always clears the browser cookies, even when revocation fails.
func (s *authService) Logout(ctx context.Context, cookies []*http.Cookie) []*http.Cookie {
	if tokens := s.cookies.Read(cookies); !tokens.IsEmpty() {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		if err := s.provider.SignOut(callCtx, tokens); err != nil {
			s.log(ctx).Warn("Session revocation failed", slog.Any("error", err))
		}
	}

	return s.cookies.Clear()
}
