package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Env keys written by the bootstrap. config.New maps them onto the yaml keys.
const (
	EnvAuthProviderURL     = "AUTHPROVIDER_URL"
	EnvAuthProviderAnonKey = "AUTHPROVIDER_ANONKEY"
	EnvPostgresHost        = "POSTGRES_MASTER_HOST"
	EnvPostgresPort        = "POSTGRES_MASTER_PORT"
	EnvPostgresUser        = "POSTGRES_MASTER_USERNAME"
	EnvPostgresPassword    = "POSTGRES_MASTER_PASSWORD"
	EnvPostgresDatabase    = "POSTGRES_DATABASE"
	EnvStorageBucketURL    = "STORAGE_BUCKETURL"
)

const defaultPostgresPort = 5432

// setupService implements the SetupUsecase interface.
type setupService struct {
	cfg       *config.Config
	hasher    service.PasswordHasher
	envWriter service.EnvWriter
	provider  service.AuthProvider
	database  repository.HealthChecker
	storage   service.FileStorage
	logger    *slog.Logger
}

// SetupServiceParams holds dependencies for SetupService, injected by Fx.
type SetupServiceParams struct {
	fx.In

	Config    *config.Config
	Hasher    service.PasswordHasher
	EnvWriter service.EnvWriter
	Provider  service.AuthProvider
	Database  repository.HealthChecker
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewSetupService is the constructor for setupService.
func NewSetupService(params SetupServiceParams) usecase.SetupUsecase {
	return &setupService{
		cfg:       params.Config,
		hasher:    params.Hasher,
		envWriter: params.EnvWriter,
		provider:  params.Provider,
		database:  params.Database,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (s *setupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Authorize fails with ErrSetupDisabled unless setup is switched on, so the
// endpoints look absent on a configured site.
func (s *setupService) Authorize(token string) error {
	if !s.cfg.Setup.Enabled {
		return domainerrors.ErrSetupDisabled
	}

	if token == "" || !s.hasher.Check(token, s.cfg.Setup.TokenHash) {
		return domainerrors.ErrInvalidSetupToken
	}

	return nil
}

func (s *setupService) SaveCredentials(ctx context.Context, creds *usecase.Credentials) (string, error) {
	port := creds.PostgresPort
	if port == 0 {
		port = defaultPostgresPort
	}

	values := map[string]string{
		EnvAuthProviderURL:     creds.AuthProviderURL,
		EnvAuthProviderAnonKey: creds.AuthProviderAnonKey,
		EnvPostgresHost:        creds.PostgresHost,
		EnvPostgresPort:        strconv.Itoa(port),
		EnvPostgresUser:        creds.PostgresUser,
		EnvPostgresPassword:    creds.PostgresPassword,
		EnvPostgresDatabase:    creds.PostgresDatabase,
	}
	if creds.StorageBucketURL != "" {
		values[EnvStorageBucketURL] = creds.StorageBucketURL
	}

	path := s.cfg.Setup.EnvFile
	if err := s.envWriter.Write(path, values); err != nil {
		s.log(ctx).Error("Failed to write credentials", slog.String("path", path), slog.Any("error", err))

		return "", domainerrors.ErrInternalError.WrapMessage("write credentials")
	}

	s.log(ctx).Info("Credentials written; restart the server to apply them", slog.String("path", path))

	return path, nil
}

// Verify probes every backend concurrently, each bounded by the auth timeout.
func (s *setupService) Verify(ctx context.Context) *usecase.VerifyReport {
	checks := []struct {
		name  string
		probe func(context.Context) error
	}{
		{name: "auth_provider", probe: s.provider.Health},
		{name: "database", probe: s.database.Ping},
		{name: "storage", probe: s.storage.Ping},
	}

	report := &usecase.VerifyReport{
		OK:     true,
		Checks: make([]*usecase.CheckResult, len(checks)),
	}

	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			report.Checks[i] = s.runCheck(ctx, check.name, check.probe)

			return nil
		})
	}
	_ = g.Wait()

	for _, result := range report.Checks {
		if !result.OK {
			report.OK = false
		}
	}

	return report
}

func (s *setupService) runCheck(ctx context.Context, name string, probe func(context.Context) error) *usecase.CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, s.cfg.AuthProvider.Timeout)
	defer cancel()

	start := time.Now()
	err := probe(checkCtx)
	result := &usecase.CheckResult{
		Name:    name,
		OK:      err == nil,
		Latency: time.Since(start),
	}

	if err != nil {
		result.Error = err.Error()
		s.log(ctx).Warn("Setup check failed", slog.String("check", name), slog.Any("error", err))
	}

	return result
}
