package emailbison

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

const service = "emailbison"

// ErrNoBaseURL is returned when the instance URL is not configured. Every
// EmailBison customer runs on its own host, so there is no default.
var ErrNoBaseURL = fmt.Errorf("emailbison base url: %w", integration.ErrNotConfigured)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchReplyPage returns one page of interested inbox replies. The cursor is
// the page number; an empty cursor means page 1.
func (c *Client) FetchReplyPage(ctx context.Context, apiKey string, w entity.Window, cursor string) (entity.MessagePage, error) {
	page := 1
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 1 {
			return entity.MessagePage{}, fmt.Errorf("emailbison: invalid page cursor %q", cursor)
		}
		page = n
	}

	params := url.Values{}
	params.Set("status", "interested")
	params.Set("folder", "inbox")
	params.Set("date_from", w.Start.UTC().Format(time.RFC3339))
	params.Set("date_to", w.End.UTC().Format(time.RFC3339))
	params.Set("page", strconv.Itoa(page))

	var data repliesResponse
	if err := c.get(ctx, apiKey, "/api/replies", params, &data); err != nil {
		return entity.MessagePage{}, err
	}

	out := entity.MessagePage{Messages: make([]entity.InboundMessage, 0, len(data.Data))}
	for _, r := range data.Data {
		ts, err := time.Parse(time.RFC3339Nano, r.DateReceived)
		if err != nil {
			return entity.MessagePage{}, &integration.DecodeError{
				Service: service,
				Err:     fmt.Errorf("reply %d: bad date_received %q", r.ID, r.DateReceived),
			}
		}
		sourceID := strconv.FormatInt(r.ID, 10)
		if r.LeadID != nil {
			sourceID = strconv.FormatInt(*r.LeadID, 10)
		}
		var thread string
		if r.ParentID != nil {
			thread = strconv.FormatInt(*r.ParentID, 10)
		}
		out.Messages = append(out.Messages, entity.InboundMessage{
			ID:        sourceID,
			FromEmail: r.FromEmailAddress,
			FromName:  r.FromName,
			Subject:   r.Subject,
			Body:      r.TextBody,
			Timestamp: ts,
			ThreadID:  thread,
			Received:  !strings.EqualFold(r.Folder, "sent"),
		})
	}

	if data.Meta.CurrentPage > 0 && data.Meta.CurrentPage < data.Meta.LastPage {
		out.NextCursor = strconv.Itoa(data.Meta.CurrentPage + 1)
	}
	return out, nil
}

// FetchCounters reads the workspace-level campaign stats for the window.
func (c *Client) FetchCounters(ctx context.Context, apiKey string, w entity.Window) (entity.Counters, error) {
	params := url.Values{}
	params.Set("start_date", w.Start.UTC().Format("2006-01-02"))
	params.Set("end_date", w.LastDay().UTC().Format("2006-01-02"))

	var data statsResponse
	if err := c.get(ctx, apiKey, "/api/workspaces/v1.1/stats", params, &data); err != nil {
		return entity.Counters{}, err
	}

	d := data.Data
	return entity.Counters{
		Sent:         int64(d.EmailsSent),
		Contacted:    int64(d.TotalLeadsContacted),
		Opened:       int64(d.Opened),
		Replied:      int64(d.UniqueRepliesPerContact),
		Bounced:      int64(d.Bounced),
		Unsubscribed: int64(d.Unsubscribed),
		Interested:   int64(d.Interested),
		// EmailBison has no opportunity pipeline; interested replies are the
		// closest equivalent for health scoring.
		Opportunities: int64(d.Interested),
	}, nil
}

func (c *Client) get(ctx context.Context, apiKey, path string, params url.Values, out any) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &integration.TransportError{Service: service, Err: err}
	}
	defer resp.Body.Close()

	if err := integration.CheckStatus(service, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &integration.DecodeError{Service: service, Err: err}
	}
	return nil
}
