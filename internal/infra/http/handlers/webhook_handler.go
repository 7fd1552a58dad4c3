package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

type WebhookPoster interface {
	Post(ctx context.Context, url string, payload any) error
}

type WebhookHandler struct {
	Poster WebhookPoster
}

func NewWebhookHandler(poster WebhookPoster) *WebhookHandler {
	return &WebhookHandler{Poster: poster}
}

type sendWebhookRequest struct {
	WebhookURL string          `json:"webhook_url"`
	Workspace  json.RawMessage `json:"workspace"`
}

type sendWebhookResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Handle serves POST /send-webhook: it forwards one dashboard row to the
// given URL as-is.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req sendWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, sendWebhookResponse{Error: "Invalid JSON"})
		return
	}

	target := strings.TrimSpace(req.WebhookURL)
	if target == "" {
		writeJSON(w, http.StatusBadRequest, sendWebhookResponse{Error: "Missing webhook_url"})
		return
	}
	if u, err := url.Parse(target); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		writeJSON(w, http.StatusBadRequest, sendWebhookResponse{Error: "webhook_url must be an http(s) URL"})
		return
	}

	payload := req.Workspace
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	log.Printf("📤 Webhook: sending workspace to %s", target)
	if err := h.Poster.Post(r.Context(), target, payload); err != nil {
		log.Printf("❌ Webhook: %v", err)
		resp := sendWebhookResponse{Error: err.Error()}
		var statusErr *integration.StatusError
		if errors.As(err, &statusErr) {
			resp.StatusCode = statusErr.StatusCode
			resp.Error = statusErr.Body
		}
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}

	writeJSON(w, http.StatusOK, sendWebhookResponse{Success: true})
}
