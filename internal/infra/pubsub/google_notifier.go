package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"atelier/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// googleNotifier implements LeadNotifier using Google Cloud Pub/Sub
type googleNotifier struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleNotifier creates a Pub/Sub backed notifier after checking the topic exists.
func NewGoogleNotifier(ctx context.Context, projectID, topicID, credentialsPath string, logger *slog.Logger) (service.LeadNotifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub lead notifier initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleNotifier{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// NotifyLead publishes the lead and waits for the server ack.
func (n *googleNotifier) NotifyLead(ctx context.Context, event *service.LeadEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := n.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: leadAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	n.logger.Info("[GooglePubSub] Lead published",
		slog.String("lead_id", event.LeadID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (n *googleNotifier) Close() error {
	if n.publisher != nil {
		n.publisher.Stop()
	}
	if n.client != nil {
		return errors.WithStack(n.client.Close())
	}

	return nil
}
