package usecase

import (
	"bytes"
	"context"
	"encoding/json"
)

const (
	ToolClientList          = "get_client_list"
	ToolLeadResponses       = "get_lead_responses"
	ToolCampaignStats       = "get_campaign_stats"
	ToolWorkspaceInfo       = "get_workspace_info"
	ToolMultiClientStats    = "get_multi_client_stats"
	ToolRankClients         = "rank_clients"
	ToolFindUnderperforming = "find_underperforming_clients"
)

type ToolSpec struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Toolbox is the read-only tool surface shared by the MCP and HTTP fronts.
type Toolbox struct {
	ClientList    *GetClientListUseCase
	LeadResponses *GetLeadResponsesUseCase
	CampaignStats *GetCampaignStatsUseCase
	WorkspaceInfo *GetWorkspaceInfoUseCase
	Aggregator    *StatsAggregator
}

func (t *Toolbox) Specs() []ToolSpec {
	return []ToolSpec{
		{
			Name:  ToolClientList,
			Title: "List Clients",
			Description: "Get a list of all available clients/workspaces. Returns workspace IDs and friendly client names. " +
				"Use this first to see available clients before querying specific data.",
		},
		{
			Name:  ToolLeadResponses,
			Title: "Lead Responses",
			Description: "Get positive lead responses for a specific client. Returns interested leads with their email addresses, " +
				"reply summaries and timestamps, one per lead (latest reply). Supports lookup by exact workspace_id or fuzzy client name, " +
				"e.g. 'prism', 'ABC Corp' or '23dbc003-ebe2-4950-96f3-78761de5cf85'.",
		},
		{
			Name:  ToolCampaignStats,
			Title: "Campaign Stats",
			Description: "Get campaign statistics for a specific client: emails sent, opens, replies, bounces, unsubscribes, " +
				"interested leads, opportunities and the derived rates. Supports lookup by exact workspace_id or fuzzy client name.",
		},
		{
			Name:  ToolWorkspaceInfo,
			Title: "Workspace Info",
			Description: "Get detailed workspace information from Instantly: workspace name, plan details, domain and timestamps. " +
				"Useful for getting the actual workspace name when it's not in the sheet.",
		},
		{
			Name:  ToolMultiClientStats,
			Title: "Multi-Client Stats",
			Description: "Get campaign statistics for several clients (or all of them) with totals. Totals sum the raw counts " +
				"before computing rates.",
		},
		{
			Name:        ToolRankClients,
			Title:       "Rank Clients",
			Description: "Rank clients by a metric (e.g. reply_rate, sent, opportunities), highest first.",
		},
		{
			Name:        ToolFindUnderperforming,
			Title:       "Find Underperforming Clients",
			Description: "List clients whose metric is below a threshold, e.g. reply_rate below 1.",
		},
	}
}

// Call decodes args for the named tool and runs it.
func (t *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case ToolClientList:
		var in ClientListInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.ClientList.Execute(ctx, in)
	case ToolLeadResponses:
		var in LeadResponsesInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.LeadResponses.Execute(ctx, in)
	case ToolCampaignStats:
		var in CampaignStatsInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.CampaignStats.Execute(ctx, in)
	case ToolWorkspaceInfo:
		var in WorkspaceInfoInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.WorkspaceInfo.Execute(ctx, in)
	case ToolMultiClientStats:
		var in MultiStatsInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Aggregator.MultiClientStats(ctx, in)
	case ToolRankClients:
		var in RankInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Aggregator.RankClients(ctx, in)
	case ToolFindUnderperforming:
		var in ThresholdInput
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.Aggregator.FindUnderperforming(ctx, in)
	}
	return nil, &ToolError{Code: CodeUnsupported, Message: "unknown tool: " + name}
}

func decodeArgs(raw json.RawMessage, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return invalidInput("invalid arguments: %v", err)
	}
	return nil
}
