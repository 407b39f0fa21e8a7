package auth

import (
	"context"
	"log/slog"

	"atelier/config"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/service"
	"atelier/internal/infra/auth/firebase"
	"atelier/internal/infra/auth/gotrue"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for AuthProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAuthProvider creates the AuthProvider selected by configuration
func NewAuthProvider(params ProviderParams) (service.AuthProvider, error) {
	cfg := params.Config.AuthProvider
	logger := params.Logger

	switch cfg.Provider {
	case constants.AuthProviderGoTrue:
		if cfg.URL == "" {
			return nil, errors.New("authProvider.url is required for gotrue provider")
		}
		logger.Info("Using GoTrue auth provider", slog.String("url", cfg.URL))

		return gotrue.NewClient(cfg.URL, cfg.AnonKey, cfg.Timeout, logger), nil

	case constants.AuthProviderFirebase:
		if cfg.APIKey == "" {
			return nil, errors.New("authProvider.apiKey is required for firebase provider")
		}
		logger.Info("Using Firebase auth provider", slog.String("project_id", cfg.ProjectID))

		return firebase.NewProvider(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, cfg.APIKey, cfg.SessionTTL, logger)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewAuthProvider,
		NewBcryptHasher,
	),
)
