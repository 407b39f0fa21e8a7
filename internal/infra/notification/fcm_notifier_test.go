package notification

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"atelier/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/atelier/messages/1", nil
}

func newTestNotifier(sender *fakeSender) *fcmNotifier {
	return newFCMNotifier(sender, "new-leads", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFCMNotifier_NotifyLead(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	err := n.NotifyLead(context.Background(), &service.LeadEvent{
		LeadID:  "lead-1",
		Name:    "Layla",
		Email:   "layla@example.com",
		Locale:  "ar",
		Message: strings.Repeat("نود تصميم فيلا ", 30),
	})

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "new-leads", msg.Topic)
	assert.Equal(t, "New lead: Layla", msg.Notification.Title)
	assert.LessOrEqual(t, utf8.RuneCountInString(msg.Notification.Body), pushBodyMaxRunes+1)
	assert.Equal(t, "lead-1", msg.Data["lead_id"])
	assert.Equal(t, "ar", msg.Data["locale"])
}

func TestFCMNotifier_SendError(t *testing.T) {
	n := newTestNotifier(&fakeSender{err: errors.New("quota exceeded")})

	err := n.NotifyLead(context.Background(), &service.LeadEvent{LeadID: "lead-1", Name: "Omar"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.NoError(t, n.Close())
}
