package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rentmarket/internal/pkg/config"
)

// WebhookPublisher delivers domain events to a configured HTTP endpoint.
// Delivery is best-effort: every failure is logged and swallowed so the
// committed operation is never affected. An empty URL disables delivery.
type WebhookPublisher struct {
	url    string
	client *http.Client
}

func NewWebhookPublisher(cfg config.WebhookConfig) *WebhookPublisher {
	return &WebhookPublisher{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type envelope struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

func (p *WebhookPublisher) Publish(ctx context.Context, event string, payload any) {
	if p.url == "" {
		return
	}

	body, err := json.Marshal(envelope{
		Event:      event,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		slog.Warn("failed to encode webhook payload", "event", event, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		slog.Warn("failed to build webhook request", "event", event, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Warn("webhook delivery failed", "event", event, "error", err)
		return
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close webhook response body", "error", err)
		}
	}()

	if resp.StatusCode >= 300 {
		slog.Warn("webhook endpoint returned non-success status", "event", event, "status", resp.StatusCode)
	}
}
