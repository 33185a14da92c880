package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookTimeout = 10 * time.Second

// WebhookNotifier delivers operator notifications by POSTing JSON to a
// configured URL, e.g. a messenger bridge or a chat-ops webhook.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier posting to url.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// Notify posts one operator notification. A non-empty replyUser tells
// the receiving side which user a reply should be relayed to.
func (n *WebhookNotifier) Notify(ctx context.Context, text, replyUser string) error {
	payload := map[string]string{"text": text}
	if replyUser != "" {
		payload["reply_user"] = replyUser
	}
	return postJSON(ctx, n.client, n.url, payload)
}

// WebhookMessenger delivers direct user messages through the same kind
// of bridge.
type WebhookMessenger struct {
	url    string
	client *http.Client
}

// NewWebhookMessenger creates a messenger posting to url.
func NewWebhookMessenger(url string) *WebhookMessenger {
	return &WebhookMessenger{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// SendTo posts one message addressed to a user.
func (m *WebhookMessenger) SendTo(ctx context.Context, userID, text string) error {
	return postJSON(ctx, m.client, m.url, map[string]string{
		"user_id": userID,
		"text":    text,
	})
}

func postJSON(ctx context.Context, client *http.Client, url string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
