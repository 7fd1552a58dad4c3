// Package mcpserver exposes the toolbox over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

const (
	ServerName    = "instantly-leads"
	ServerVersion = "1.0.0"
)

func boolPtr(b bool) *bool { return &b }

// NewServer registers every toolbox tool on a new MCP server.
func NewServer(tb *usecase.Toolbox) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	specs := make(map[string]usecase.ToolSpec)
	for _, s := range tb.Specs() {
		specs[s.Name] = s
	}

	register(server, specs[usecase.ToolClientList], func(ctx context.Context, in usecase.ClientListInput) (any, error) {
		return tb.ClientList.Execute(ctx, in)
	})
	register(server, specs[usecase.ToolLeadResponses], func(ctx context.Context, in usecase.LeadResponsesInput) (any, error) {
		return tb.LeadResponses.Execute(ctx, in)
	})
	register(server, specs[usecase.ToolCampaignStats], func(ctx context.Context, in usecase.CampaignStatsInput) (any, error) {
		return tb.CampaignStats.Execute(ctx, in)
	})
	register(server, specs[usecase.ToolWorkspaceInfo], func(ctx context.Context, in usecase.WorkspaceInfoInput) (any, error) {
		return tb.WorkspaceInfo.Execute(ctx, in)
	})
	register(server, specs[usecase.ToolMultiClientStats], func(ctx context.Context, in usecase.MultiStatsInput) (any, error) {
		return tb.Aggregator.MultiClientStats(ctx, in)
	})
	register(server, specs[usecase.ToolRankClients], func(ctx context.Context, in usecase.RankInput) (any, error) {
		return tb.Aggregator.RankClients(ctx, in)
	})
	register(server, specs[usecase.ToolFindUnderperforming], func(ctx context.Context, in usecase.ThresholdInput) (any, error) {
		return tb.Aggregator.FindUnderperforming(ctx, in)
	})

	return server
}

func register[In any](server *mcp.Server, spec usecase.ToolSpec, run func(context.Context, In) (any, error)) {
	tool := &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: &mcp.ToolAnnotations{
			Title:           spec.Title,
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		out, err := run(ctx, in)
		if err != nil {
			res := usecase.ToErrorResult(err, uuid.NewString())
			middleware.RecordToolCall(spec.Name, res.Error.Code, time.Since(start))
			log.Printf("❌ Tool %s [%s]: %v", spec.Name, res.RequestID, err)
			return TextResult(res, true), nil, nil
		}
		middleware.RecordToolCall(spec.Name, "ok", time.Since(start))
		return TextResult(out, false), nil, nil
	})
}

// TextResult renders v as indented JSON text content.
func TextResult(v any, isError bool) *mcp.CallToolResult {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		body, _ = json.Marshal(usecase.ToErrorResult(err, ""))
		isError = true
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
		IsError: isError,
	}
}

// Run serves the tools on stdin/stdout until ctx is done or the client leaves.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
