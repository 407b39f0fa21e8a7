package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookNotifier implements LeadNotifier by POSTing a Pub/Sub push envelope
// to an HTTP endpoint, so the same receiver works with or without Google Pub/Sub.
type webhookNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewWebhookNotifier creates a notifier that posts to endpoint.
func NewWebhookNotifier(endpoint string, timeout time.Duration, logger *slog.Logger) service.LeadNotifier {
	return &webhookNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NotifyLead posts the lead to the webhook endpoint.
func (n *webhookNotifier) NotifyLead(ctx context.Context, event *service.LeadEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/leads",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.LeadID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = leadAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("lead webhook returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Info("[Webhook] Lead delivered",
		slog.String("lead_id", event.LeadID),
		slog.String("endpoint", n.endpoint),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (n *webhookNotifier) Close() error {
	return nil
}

func leadAttributes(event *service.LeadEvent) map[string]string {
	attributes := map[string]string{
		"lead_id": event.LeadID,
		"locale":  event.Locale,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
