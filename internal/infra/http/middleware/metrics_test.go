package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestMetricsUsesRoutePattern - Requests are labelled by route, not raw path
func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/tools/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/tools/{name}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/tools/rank_clients", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/tools/get_client_list", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/tools/{name}", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "/tools/rank_clients", "418")))
}

func TestRecordToolCall(t *testing.T) {
	before := testutil.ToFloat64(toolCalls.WithLabelValues("rank_clients", "NOT_FOUND"))

	RecordToolCall("rank_clients", "NOT_FOUND", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(toolCalls.WithLabelValues("rank_clients", "NOT_FOUND")))
}

func TestRecordReport(t *testing.T) {
	RecordReport("webhook", "failed")
	assert.Equal(t, 1.0, testutil.ToFloat64(reportsDelivered.WithLabelValues("webhook", "failed")))
}
