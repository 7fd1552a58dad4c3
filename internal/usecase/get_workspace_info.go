package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type GetWorkspaceInfoUseCase struct {
	Resolver   *ClientResolver
	Workspaces WorkspaceProvider
}

func NewGetWorkspaceInfoUseCase(resolver *ClientResolver, workspaces WorkspaceProvider) *GetWorkspaceInfoUseCase {
	return &GetWorkspaceInfoUseCase{Resolver: resolver, Workspaces: workspaces}
}

func (uc *GetWorkspaceInfoUseCase) Execute(ctx context.Context, input WorkspaceInfoInput) (*entity.WorkspaceDetails, error) {
	entry, err := uc.Resolver.Resolve(ctx, input.WorkspaceID, "")
	if err != nil {
		return nil, err
	}
	if entry.Platform != entity.PlatformInstantly || uc.Workspaces == nil {
		return nil, &ToolError{
			Code:    CodeUnsupported,
			Message: "workspace info is only available for Instantly workspaces",
			Scope:   entry.Scope(),
		}
	}

	details, err := uc.Workspaces.FetchWorkspace(ctx, entry.Credential)
	if err != nil {
		return nil, classifyUpstream(err, entry.Scope())
	}
	if details.ID == "" {
		details.ID = entry.Identifier
	}
	return details, nil
}
