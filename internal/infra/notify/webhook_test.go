package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-leads/internal/infra/integration"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func TestWebhookNotifierPostsReport(t *testing.T) {
	var got usecase.HealthReport
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	n := NewWebhookNotifier(NewWebhookClient(time.Second), server.URL)
	err := n.Notify(context.Background(), usecase.HealthReport{EventID: "evt-7"})

	require.NoError(t, err)
	assert.Equal(t, "evt-7", got.EventID)
	assert.Equal(t, "webhook", n.Name())
}

func TestWebhookClientNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such hook"))
	}))
	defer server.Close()

	err := NewWebhookClient(time.Second).Post(context.Background(), server.URL, map[string]string{"a": "b"})

	var statusErr *integration.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "no such hook", statusErr.Body)
}
