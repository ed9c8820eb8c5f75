// Package webhook provides the outbound HTTP transport for webhook delivery.
//
// A client performs exactly one POST per call; bounded retry lives in the
// delivery pipeline, not here.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client posts webhook payloads to configured endpoints.
type Client struct {
	client *http.Client
}

// NewClient creates a webhook client with a per-attempt timeout. A zero
// timeout falls back to the default, so a hung endpoint can never stall a
// sweep indefinitely.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Send delivers one event payload to url.
//
// The request carries the event type and timestamp headers of the webhook
// contract; any status outside 2xx is an error.
func (c *Client) Send(ctx context.Context, url, eventType string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", eventType)
	req.Header.Set("X-Webhook-Timestamp", time.Now().UTC().Format(time.RFC3339))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook endpoint error: %s", resp.Status)
	}

	return nil
}
