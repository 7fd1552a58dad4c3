package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-leads/internal/infra/integration"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type WebhookClient struct {
	http *http.Client
}

func NewWebhookClient(timeout time.Duration) *WebhookClient {
	return &WebhookClient{http: &http.Client{Timeout: timeout}}
}

// Post sends payload as JSON. Non-2xx answers come back as
// *integration.StatusError.
func (c *WebhookClient) Post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LigueLeads/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return &integration.TransportError{Service: "webhook", Err: err}
	}
	defer resp.Body.Close()

	return integration.CheckStatus("webhook", resp)
}

// WebhookNotifier delivers health reports to a fixed URL.
type WebhookNotifier struct {
	Client *WebhookClient
	URL    string
}

func NewWebhookNotifier(client *WebhookClient, url string) *WebhookNotifier {
	return &WebhookNotifier{Client: client, URL: url}
}

func (n *WebhookNotifier) Name() string { return "webhook" }

func (n *WebhookNotifier) Notify(ctx context.Context, report usecase.HealthReport) error {
	return n.Client.Post(ctx, n.URL, report)
}
