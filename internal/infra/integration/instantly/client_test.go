package instantly

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

var testWindow = entity.Window{
	Start: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC),
}

func TestFetchReplyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("i_status"))
		assert.Equal(t, "2025-11-01T00:00:00Z", q.Get("min_timestamp_created"))
		assert.Equal(t, "2025-11-08T00:00:00Z", q.Get("max_timestamp_created"))
		assert.Equal(t, "2", q.Get("limit"))
		assert.Equal(t, "cur-1", q.Get("starting_after"))

		fmt.Fprint(w, `{
			"items": [
				{"id": "e1", "lead": "lead-1", "from_address_email": "ana@globex.com",
				 "from_address_json": [{"address": "ana@globex.com", "name": "Ana"}],
				 "subject": "Re: intro", "body": {"text": "Sounds good"},
				 "timestamp_email": "2025-11-03T10:00:00.000Z", "thread_id": "t1", "ue_type": 2},
				{"id": "e2", "from_address_email": "sdr@prismpr.com", "subject": "intro",
				 "body": {"text": "Hi"}, "timestamp_created": "2025-11-02T10:00:00Z", "ue_type": 1}
			],
			"next_starting_after": "cur-2"
		}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	c.pageSize = 2

	page, err := c.FetchReplyPage(context.Background(), "key-123", testWindow, "cur-1")

	require.NoError(t, err)
	require.Len(t, page.Messages, 2)
	assert.Equal(t, "cur-2", page.NextCursor)

	m := page.Messages[0]
	assert.Equal(t, "lead-1", m.ID)
	assert.Equal(t, "Ana", m.FromName)
	assert.Equal(t, "Sounds good", m.Body)
	assert.Equal(t, "t1", m.ThreadID)
	assert.True(t, m.Received)
	assert.True(t, m.Timestamp.Equal(time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)))

	assert.Equal(t, "e2", page.Messages[1].ID)
	assert.False(t, page.Messages[1].Received)
}

// TestFetchReplyPageShortPageEnds - A page smaller than the limit is the last
func TestFetchReplyPageShortPageEnds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("starting_after"))
		fmt.Fprint(w, `{"items": [], "next_starting_after": "cur-9"}`)
	}))
	defer server.Close()

	page, err := NewClient(server.URL, time.Second).FetchReplyPage(context.Background(), "k", testWindow, "")

	require.NoError(t, err)
	assert.Empty(t, page.NextCursor)
}

func TestFetchReplyPageBadTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [{"id": "e1", "timestamp_email": "yesterday"}]}`)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).FetchReplyPage(context.Background(), "k", testWindow, "")

	var decodeErr *integration.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestFetchCounters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/analytics/overview", r.URL.Path)
		assert.Equal(t, "2025-11-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-11-07", r.URL.Query().Get("end_date"))
		fmt.Fprint(w, `{
			"emails_sent_count": 2500, "new_leads_contacted_count": 900,
			"open_count_unique": 1200, "reply_count_unique": 25,
			"bounced_count": 30, "unsubscribed_count": 4,
			"total_interested": 6, "total_opportunities": 2
		}`)
	}))
	defer server.Close()

	c, err := NewClient(server.URL, time.Second).FetchCounters(context.Background(), "k", testWindow)

	require.NoError(t, err)
	assert.Equal(t, entity.Counters{
		Sent: 2500, Contacted: 900, Opened: 1200, Replied: 25,
		Bounced: 30, Unsubscribed: 4, Interested: 6, Opportunities: 2,
	}, c)
}

func TestFetchCountersStatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error": "nope"}`)
		}))

		_, err := NewClient(server.URL, time.Second).FetchCounters(context.Background(), "k", testWindow)
		server.Close()

		var statusErr *integration.StatusError
		require.True(t, errors.As(err, &statusErr), status)
		assert.Equal(t, status, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "nope")
	}
}

func TestFetchWorkspace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workspaces/current", r.URL.Path)
		fmt.Fprint(w, `{"id": "ws-1", "name": "Prism PR", "plan_id": "pid_hg", "org_client_domain": "prismpr.com"}`)
	}))
	defer server.Close()

	ws, err := NewClient(server.URL, time.Second).FetchWorkspace(context.Background(), "k")

	require.NoError(t, err)
	assert.Equal(t, "Prism PR", ws.Name)
	assert.Equal(t, "pid_hg", ws.PlanID)
	assert.Equal(t, "prismpr.com", ws.OrgClientDomain)
}

func TestFetchWorkspaceMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>maintenance</html>`)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).FetchWorkspace(context.Background(), "k")

	var decodeErr *integration.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
