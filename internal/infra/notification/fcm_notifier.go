// Package notification pushes lead alerts to the studio's phones through
// Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"atelier/internal/domain/service"
	"atelier/internal/util"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	pushTitlePrefix  = "New lead: "
	pushBodyMaxRunes = 140
)

// messageSender is the part of the messaging client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmNotifier struct {
	sender messageSender
	topic  string
	logger *slog.Logger
}

// NewFCMNotifier creates a notifier that publishes every lead to an FCM topic
// the studio app subscribes to.
func NewFCMNotifier(ctx context.Context, credentialsPath, topic string, logger *slog.Logger) (service.LeadNotifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	logger.Info("FCM lead notifier initialized", slog.String("topic", topic))

	return newFCMNotifier(client, topic, logger), nil
}

func newFCMNotifier(sender messageSender, topic string, logger *slog.Logger) *fcmNotifier {
	return &fcmNotifier{
		sender: sender,
		topic:  topic,
		logger: logger,
	}
}

// NotifyLead sends one topic message. The full lead stays in the database;
// the push carries a preview and the lead id for the app to open.
func (n *fcmNotifier) NotifyLead(ctx context.Context, event *service.LeadEvent) error {
	message := &messaging.Message{
		Topic: n.topic,
		Notification: &messaging.Notification{
			Title: pushTitlePrefix + event.Name,
			Body:  util.TruncateRunes(event.Message, pushBodyMaxRunes),
		},
		Data: map[string]string{
			"lead_id": event.LeadID,
			"locale":  event.Locale,
			"email":   event.Email,
		},
	}

	id, err := n.sender.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send lead push")
	}

	n.logger.Info("[FCM] Lead pushed",
		slog.String("lead_id", event.LeadID),
		slog.String("message_id", id),
	)

	return nil
}

func (n *fcmNotifier) Close() error {
	return nil
}
