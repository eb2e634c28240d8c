package smtp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeClient struct {
	failures int
	calls    int
	sent     []*mail.Msg
}

func (c *fakeClient) DialAndSend(msgs ...*mail.Msg) error {
	c.calls++
	if c.calls <= c.failures {
		return errors.New("connection reset by peer")
	}
	c.sent = append(c.sent, msgs...)
	return nil
}

func notificationData() map[string]any {
	return map[string]any{
		"BaseURL":       "http://localhost:4444",
		"Message":       "database is down",
		"RequestMethod": "GET",
		"RequestURL":    "/v1/activities",
		"Trace":         "goroutine 1 [running]",
	}
}

func TestSendRetries(t *testing.T) {
	client := &fakeClient{failures: 2}
	m := NewMailerWithClient(client, "Biodata <no_reply@example.org>")
	m.retryDelay = 0

	patterns := []string{"error-notification.tmpl"}
	require.NoError(t, m.Send("ops@example.gov.bd", notificationData(), patterns...))

	assert.Equal(t, 3, client.calls)
	require.Len(t, client.sent, 1)
	assert.Equal(t, []string{"Error notification"}, client.sent[0].GetGenHeader(mail.HeaderSubject))
	assert.Equal(t, []string{"error-notification.tmpl"}, patterns, "caller's patterns are not modified")
}

func TestSendGivesUp(t *testing.T) {
	client := &fakeClient{failures: 5}
	m := NewMailerWithClient(client, "no_reply@example.org")
	m.retryDelay = 0

	err := m.Send("ops@example.gov.bd", notificationData(), "error-notification.tmpl")
	require.Error(t, err)
	assert.Equal(t, sendAttempts, client.calls)
}

func TestSendUnknownTemplate(t *testing.T) {
	client := &fakeClient{}
	m := NewMailerWithClient(client, "no_reply@example.org")

	require.Error(t, m.Send("ops@example.gov.bd", nil, "missing.tmpl"))
	assert.Zero(t, client.calls)
}
