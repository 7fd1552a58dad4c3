package instantly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

const (
	DefaultBaseURL  = "https://api.instantly.ai/api/v2"
	DefaultPageSize = 100

	service = "instantly"

	// interestStatus is Instantly's i_status value for "Interested".
	interestStatus = 1
)

type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		pageSize: DefaultPageSize,
		http:     &http.Client{Timeout: timeout},
	}
}

// FetchReplyPage returns one page of emails in interested threads. The cursor
// is Instantly's starting_after value.
func (c *Client) FetchReplyPage(ctx context.Context, apiKey string, w entity.Window, cursor string) (entity.MessagePage, error) {
	params := url.Values{}
	params.Set("i_status", strconv.Itoa(interestStatus))
	params.Set("min_timestamp_created", w.Start.UTC().Format(time.RFC3339))
	params.Set("max_timestamp_created", w.End.UTC().Format(time.RFC3339))
	params.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		params.Set("starting_after", cursor)
	}

	var data emailListResponse
	if err := c.get(ctx, apiKey, "/emails", params, &data); err != nil {
		return entity.MessagePage{}, err
	}

	page := entity.MessagePage{Messages: make([]entity.InboundMessage, 0, len(data.Items))}
	for _, e := range data.Items {
		msg, err := toMessage(e)
		if err != nil {
			return entity.MessagePage{}, &integration.DecodeError{Service: service, Err: err}
		}
		page.Messages = append(page.Messages, msg)
	}

	// A short page is the last one even if a cursor came back.
	if data.NextStartingAfter != "" && len(data.Items) >= c.pageSize {
		page.NextCursor = data.NextStartingAfter
	}
	return page, nil
}

// FetchCounters reads the campaign analytics overview for the window.
func (c *Client) FetchCounters(ctx context.Context, apiKey string, w entity.Window) (entity.Counters, error) {
	params := url.Values{}
	params.Set("start_date", w.Start.UTC().Format("2006-01-02"))
	params.Set("end_date", w.LastDay().UTC().Format("2006-01-02"))

	var data analyticsOverviewResponse
	if err := c.get(ctx, apiKey, "/campaigns/analytics/overview", params, &data); err != nil {
		return entity.Counters{}, err
	}

	contacted := data.ContactedCount
	if contacted == 0 {
		contacted = data.NewLeadsContactedCount
	}
	return entity.Counters{
		Sent:          int64(data.EmailsSentCount),
		Contacted:     int64(contacted),
		Opened:        int64(data.OpenCountUnique),
		Replied:       int64(data.ReplyCountUnique),
		Bounced:       int64(data.BouncedCount),
		Unsubscribed:  int64(data.UnsubscribedCount),
		Interested:    int64(data.TotalInterested),
		Opportunities: int64(data.TotalOpportunities),
	}, nil
}

// FetchWorkspace returns the workspace the API key belongs to.
func (c *Client) FetchWorkspace(ctx context.Context, apiKey string) (*entity.WorkspaceDetails, error) {
	var data workspaceResponse
	if err := c.get(ctx, apiKey, "/workspaces/current", nil, &data); err != nil {
		return nil, err
	}
	if data.ID == "" {
		return nil, &integration.DecodeError{Service: service, Err: fmt.Errorf("workspace without id")}
	}
	return &entity.WorkspaceDetails{
		ID:                      data.ID,
		Name:                    data.Name,
		Owner:                   data.Owner,
		PlanID:                  data.PlanID,
		OrgLogoURL:              data.OrgLogoURL,
		OrgClientDomain:         data.OrgClientDomain,
		PlanIDCRM:               data.PlanIDCRM,
		PlanIDLeadFinder:        data.PlanIDLeadFinder,
		PlanIDVerification:      data.PlanIDVerification,
		PlanIDWebsiteVisitor:    data.PlanIDWebsiteVisitor,
		PlanIDInboxPlacement:    data.PlanIDInboxPlacement,
		TimestampCreated:        data.TimestampCreated,
		TimestampUpdated:        data.TimestampUpdated,
		DefaultOpportunityValue: data.DefaultOpportunityValue,
	}, nil
}

func (c *Client) get(ctx context.Context, apiKey, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, apiKey)

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

func (c *Client) setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "LigueLeads/1.0")
}

func toMessage(e email) (entity.InboundMessage, error) {
	raw := e.TimestampEmail
	if raw == "" {
		raw = e.TimestampCreated
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return entity.InboundMessage{}, fmt.Errorf("email %s: bad timestamp %q", e.ID, raw)
	}

	var name string
	if len(e.FromAddressJSON) > 0 {
		name = e.FromAddressJSON[0].Name
	}

	id := e.ID
	if e.Lead != "" {
		id = e.Lead
	}

	return entity.InboundMessage{
		ID:        id,
		FromEmail: e.FromAddressEmail,
		FromName:  name,
		Subject:   e.Subject,
		Body:      e.Body.Text,
		Timestamp: ts,
		ThreadID:  e.ThreadID,
		Received:  e.UEType == ueTypeReceived,
	}, nil
}
