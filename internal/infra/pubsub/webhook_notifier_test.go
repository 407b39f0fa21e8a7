package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier/config"
	"atelier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookNotifier_NotifyLead(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())
	event := &service.LeadEvent{
		RequestID: "req-1",
		LeadID:    "lead-1",
		Name:      "Omar",
		Email:     "omar@example.com",
		Message:   "Hello",
		Locale:    "ar",
	}

	require.NoError(t, notifier.NotifyLead(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "lead-1", received.Message.MessageID)
	assert.Equal(t, "ar", received.Message.Attributes["locale"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.LeadEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestWebhookNotifier_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second, discardLogger())
	err := notifier.NotifyLead(context.Background(), &service.LeadEvent{LeadID: "lead-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewLeadNotifier(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.NotificationConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "webhook", cfg: &config.NotificationConfig{Provider: "webhook", WebhookURL: "http://localhost:1/leads"}},
		{name: "webhook without url", cfg: &config.NotificationConfig{Provider: "webhook"}, wantErr: true},
		{name: "google without topic", cfg: &config.NotificationConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.NotificationConfig{Provider: "smtp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier, err := NewLeadNotifier(NotifierParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{Notification: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, notifier)
		})
	}
}
