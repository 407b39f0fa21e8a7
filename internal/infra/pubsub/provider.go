package pubsub

import (
	"context"
	"log/slog"

	"atelier/config"
	"atelier/internal/domain/constants"
	"atelier/internal/domain/service"
	"atelier/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier is used when no lead channel is configured
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) NotifyLead(_ context.Context, event *service.LeadEvent) error {
	n.logger.Debug("[Noop] Lead notification disabled, skipping",
		slog.String("lead_id", event.LeadID),
	)

	return nil
}

func (n *noopNotifier) Close() error {
	return nil
}

// NotifierParams holds dependencies for LeadNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLeadNotifier creates a LeadNotifier based on configuration
func NewLeadNotifier(params NotifierParams) (service.LeadNotifier, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Lead notification not configured, using no-op notifier")

		return &noopNotifier{logger: logger}, nil
	}

	var notifier service.LeadNotifier
	var err error

	switch cfg.Provider {
	case constants.NotificationProviderWebhook:
		if cfg.WebhookURL == "" {
			return nil, errors.New("webhook URL is required for webhook provider")
		}
		logger.Info("Using webhook lead notifier", slog.String("endpoint", cfg.WebhookURL))

		notifier = NewWebhookNotifier(cfg.WebhookURL, cfg.Timeout, logger)

	case constants.NotificationProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		notifier, err = NewGoogleNotifier(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.CredentialsPath, logger)
		if err != nil {
			return nil, err
		}

	case constants.NotificationProviderFCM:
		if cfg.FCMTopic == "" {
			return nil, errors.New("FCM topic is required for fcm provider")
		}

		notifier, err = notification.NewFCMNotifier(params.Ctx, cfg.CredentialsPath, cfg.FCMTopic, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing LeadNotifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the lead notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLeadNotifier),
)
