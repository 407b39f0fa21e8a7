package main

import (
	"context"
	"log/slog"
	"os"

	"atelier/config"
	"atelier/internal/delivery"
	"atelier/internal/delivery/http"
	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router/handler"
	"atelier/internal/infra/auth"
	"atelier/internal/infra/envfile"
	logs "atelier/internal/infra/log"
	"atelier/internal/infra/metrics"
	"atelier/internal/infra/persistence/postgres"
	"atelier/internal/infra/pubsub"
	"atelier/internal/infra/qrcode"
	"atelier/internal/infra/storage"
	"atelier/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// envFileVar names the dotenv file written by the setup flow.
const (
	envFileVar     = "ATELIER_ENV_FILE"
	defaultEnvFile = ".env.local"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	loadEnvFile()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// loadEnvFile exports credentials saved by a previous setup run. Variables
// already present in the environment win.
func loadEnvFile() {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load env file", slog.String("path", path), slog.Any("error", err))
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		pubsub.Module,
		storage.Module,
		fx.Provide(
			envfile.NewWriter,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRouteClassifier,
			impl.NewLocaleResolver,
			impl.NewSessionCookies,
			impl.NewSessionValidator,
			impl.NewGatewayService,
			impl.NewAuthService,
			impl.NewContentService,
			impl.NewPageService,
			impl.NewOfficeService,
			impl.NewContactService,
			impl.NewStorageService,
			impl.NewSetupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGatewayMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewSetupMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewContentHandler,
			handler.NewPageHandler,
			handler.NewContactHandler,
			handler.NewFileHandler,
			handler.NewOfficeHandler,
			handler.NewSetupHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
