package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

type GetClientListUseCase struct {
	Resolver   *ClientResolver
	Workspaces WorkspaceProvider
}

func NewGetClientListUseCase(resolver *ClientResolver, workspaces WorkspaceProvider) *GetClientListUseCase {
	return &GetClientListUseCase{Resolver: resolver, Workspaces: workspaces}
}

func (uc *GetClientListUseCase) Execute(ctx context.Context, input ClientListInput) (*ClientListOutput, error) {
	platform, err := parsePlatform(input.Platform)
	if err != nil {
		return nil, err
	}
	entries, err := uc.Resolver.Entries(ctx, platform)
	if err != nil {
		return nil, err
	}

	clients := make([]ClientSummary, 0, len(entries))
	for _, e := range entries {
		c := ClientSummary{
			WorkspaceID:   e.Identifier,
			ClientName:    e.ClientName,
			Platform:      e.Platform,
			WorkspaceName: e.WorkspaceName,
		}
		if input.IncludeDetails && uc.Workspaces != nil && needsWorkspaceName(e) {
			uc.enrich(ctx, e, &c)
		}
		clients = append(clients, c)
	}

	return &ClientListOutput{TotalClients: len(clients), Clients: clients}, nil
}

func (uc *GetClientListUseCase) enrich(ctx context.Context, e entity.DirectoryEntry, c *ClientSummary) {
	c.WorkspaceName = e.Identifier
	details := lookupWorkspace(ctx, uc.Workspaces, e)
	if details == nil {
		return
	}
	if details.Name != "" {
		c.WorkspaceName = details.Name
	}
	c.PlanID = details.PlanID
	c.OrgDomain = details.OrgClientDomain
}

// needsWorkspaceName reports rows with no name in the sheet, which only show
// their id. Instantly can tell us the real one.
func needsWorkspaceName(e entity.DirectoryEntry) bool {
	return e.Platform == entity.PlatformInstantly && e.ClientName == e.Identifier
}

// lookupWorkspace fetches workspace details, or nil when there is no
// provider or the call fails. Failures are logged, never returned.
func lookupWorkspace(ctx context.Context, workspaces WorkspaceProvider, e entity.DirectoryEntry) *entity.WorkspaceDetails {
	if workspaces == nil {
		return nil
	}
	details, err := workspaces.FetchWorkspace(ctx, e.Credential)
	if err != nil {
		log.Printf("⚠️ Workspace: details for %s (key %s) unavailable: %v", e.Identifier, integration.MaskKey(e.Credential), err)
		return nil
	}
	return details
}
