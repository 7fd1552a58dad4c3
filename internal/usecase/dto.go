package usecase

import "github.com/xavierca1/ligue-leads/internal/entity"

type WindowInput struct {
	Days      int    `json:"days,omitempty" jsonschema:"number of days to look back, default 7"`
	StartDate string `json:"start_date,omitempty" jsonschema:"start date (YYYY-MM-DD or ISO-8601), overrides days"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"end date, exclusive (YYYY-MM-DD or ISO-8601), defaults to now"`
}

type ClientListInput struct {
	Platform       string `json:"platform,omitempty" jsonschema:"instantly or emailbison, empty for all"`
	IncludeDetails bool   `json:"include_details,omitempty" jsonschema:"fetch workspace names for entries without one in the sheet"`
}

type ClientSummary struct {
	WorkspaceID   string          `json:"workspace_id"`
	ClientName    string          `json:"client_name"`
	Platform      entity.Platform `json:"platform"`
	WorkspaceName string          `json:"workspace_name,omitempty"`
	PlanID        string          `json:"plan_id,omitempty"`
	OrgDomain     string          `json:"org_domain,omitempty"`
}

type ClientListOutput struct {
	TotalClients int             `json:"total_clients"`
	Clients      []ClientSummary `json:"clients"`
}

type LeadResponsesInput struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"client name or workspace ID, fuzzy matching supported"`
	Platform    string `json:"platform,omitempty" jsonschema:"instantly or emailbison, narrows the client lookup"`
	WindowInput
}

type LeadResponsesOutput struct {
	WorkspaceID string              `json:"workspace_id"`
	ClientName  string              `json:"client_name"`
	Platform    entity.Platform     `json:"platform"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	TotalLeads  int                 `json:"total_leads"`
	Truncated   bool                `json:"truncated"`
	Leads       []entity.LeadRecord `json:"leads"`
}

type CampaignStatsInput struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"client name or workspace ID, fuzzy matching supported"`
	Platform    string `json:"platform,omitempty" jsonschema:"instantly or emailbison, narrows the client lookup"`
	WindowInput
}

// CampaignStatsOutput keeps the flat fields earlier consumers read next to
// the full snapshot.
type CampaignStatsOutput struct {
	WorkspaceID   string               `json:"workspace_id"`
	ClientName    string               `json:"client_name"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	EmailsSent    int64                `json:"emails_sent"`
	Replies       int64                `json:"replies"`
	Opportunities int64                `json:"opportunities"`
	ReplyRate     float64              `json:"reply_rate"`
	Snapshot      entity.StatsSnapshot `json:"snapshot"`
}

type WorkspaceInfoInput struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"client name or workspace ID, fuzzy matching supported"`
}

type MultiStatsInput struct {
	Clients  []string `json:"clients,omitempty" jsonschema:"client names or IDs to include, empty for every client"`
	Platform string   `json:"platform,omitempty" jsonschema:"instantly or emailbison, empty for all"`
	WindowInput
}

type MultiStatsOutput struct {
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	ClientCount int                    `json:"client_count"`
	Totals      entity.StatsSnapshot   `json:"totals"`
	Clients     []entity.StatsSnapshot `json:"clients"`
}

type RankInput struct {
	Metric   string   `json:"metric" jsonschema:"counter or rate to rank by, e.g. reply_rate, sent, opportunities"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum clients returned, 0 for all"`
	Clients  []string `json:"clients,omitempty" jsonschema:"client names or IDs to include, empty for every client"`
	Platform string   `json:"platform,omitempty" jsonschema:"instantly or emailbison, empty for all"`
	WindowInput
}

type ThresholdInput struct {
	Metric    string   `json:"metric" jsonschema:"counter or rate to test, e.g. reply_rate"`
	Threshold *float64 `json:"threshold" jsonschema:"clients strictly below this value are returned"`
	Clients   []string `json:"clients,omitempty" jsonschema:"client names or IDs to include, empty for every client"`
	Platform  string   `json:"platform,omitempty" jsonschema:"instantly or emailbison, empty for all"`
	WindowInput
}

type RankedOutput struct {
	Metric    string                 `json:"metric"`
	Threshold *float64               `json:"threshold,omitempty"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Count     int                    `json:"count"`
	Clients   []entity.StatsSnapshot `json:"clients"`
}

// OverviewRow is one dashboard line of the multi overview.
type OverviewRow struct {
	WorkspaceID   string          `json:"workspace_id"`
	WorkspaceName string          `json:"workspace_name"`
	Label         string          `json:"label"`
	Platform      entity.Platform `json:"platform"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	EmailsSent    int64           `json:"emails_sent"`
	Replies       int64           `json:"replies"`
	Opportunities int64           `json:"opportunities"`
	Health        entity.Health   `json:"health"`
}

type OverviewTotals struct {
	EmailsSent    int64 `json:"emails_sent"`
	Replies       int64 `json:"replies"`
	Opportunities int64 `json:"opportunities"`
}

type MultiOverviewOutput struct {
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	WorkspaceCount int                 `json:"workspace_count"`
	Totals         OverviewTotals      `json:"totals"`
	Workspaces     []OverviewRow       `json:"workspaces"`
	HealthRules    []entity.HealthRule `json:"health_rules"`
}

// HealthReport is what notifiers receive.
type HealthReport struct {
	EventID     string              `json:"event_id"`
	GeneratedAt string              `json:"generated_at"`
	Overview    MultiOverviewOutput `json:"overview"`
	AtRisk      []OverviewRow       `json:"at_risk"`
}

type HealthReportOutput struct {
	EventID   string            `json:"event_id"`
	AtRisk    int               `json:"at_risk"`
	Delivered []string          `json:"delivered"`
	Failed    map[string]string `json:"failed,omitempty"`
}
