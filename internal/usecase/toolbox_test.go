package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

func newToolbox(client PlatformClient, workspaces WorkspaceProvider) *Toolbox {
	resolver := NewClientResolver(testDirectory())
	platforms := Platforms{entity.PlatformInstantly: client, entity.PlatformEmailBison: client}
	agg := NewStatsAggregator(resolver, platforms)
	agg.Now = fixedNow
	leads := NewGetLeadResponsesUseCase(resolver, platforms, NewSenderFilter(nil, nil, nil), 0)
	leads.Now = fixedNow
	return &Toolbox{
		ClientList:    NewGetClientListUseCase(resolver, workspaces),
		LeadResponses: leads,
		CampaignStats: NewGetCampaignStatsUseCase(agg),
		WorkspaceInfo: NewGetWorkspaceInfoUseCase(resolver, workspaces),
		Aggregator:    agg,
	}
}

func TestToolboxSpecsAreUnique(t *testing.T) {
	specs := (&Toolbox{}).Specs()
	seen := map[string]bool{}
	for _, s := range specs {
		assert.False(t, seen[s.Name], s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Description)
	}
	assert.Len(t, specs, 7)
}

func TestToolboxUnknownTool(t *testing.T) {
	_, err := newToolbox(new(MockPlatformClient), nil).Call(context.Background(), "delete_everything", nil)
	assert.True(t, IsToolError(err, CodeUnsupported))
}

func TestToolboxBadArguments(t *testing.T) {
	_, err := newToolbox(new(MockPlatformClient), nil).Call(context.Background(), ToolCampaignStats, json.RawMessage(`{"days":"seven"}`))
	assert.True(t, IsToolError(err, CodeInvalidInput))
}

func TestToolboxCampaignStats(t *testing.T) {
	client := new(MockPlatformClient)
	client.On("FetchCounters", mock.Anything, "cred1", mock.Anything).Return(entity.Counters{Sent: 200, Replied: 4}, nil).Once()

	res, err := newToolbox(client, nil).Call(context.Background(), ToolCampaignStats, json.RawMessage(`{"workspace_id":"prism pr","days":14}`))

	require.NoError(t, err)
	out, ok := res.(*CampaignStatsOutput)
	require.True(t, ok)
	assert.Equal(t, 2.0, out.ReplyRate)
	assert.Equal(t, "2025-10-25T00:00:00Z", out.StartDate)
}

func TestToolboxClientListNullArgs(t *testing.T) {
	res, err := newToolbox(new(MockPlatformClient), nil).Call(context.Background(), ToolClientList, json.RawMessage(`null`))

	require.NoError(t, err)
	out := res.(*ClientListOutput)
	assert.Equal(t, 3, out.TotalClients)
}

// TestClientListIncludeDetails - Rows without a sheet name get the workspace name
func TestClientListIncludeDetails(t *testing.T) {
	source := staticSource{
		{ClientName: "ws-a", Platform: entity.PlatformInstantly, Identifier: "ws-a", Credential: "ka"},
		{ClientName: "ws-b", Platform: entity.PlatformInstantly, Identifier: "ws-b", Credential: "kb"},
		{ClientName: "Named", Platform: entity.PlatformInstantly, Identifier: "ws-c", Credential: "kc"},
	}
	workspaces := new(MockWorkspaceProvider)
	workspaces.On("FetchWorkspace", mock.Anything, "ka").
		Return(&entity.WorkspaceDetails{Name: "Alpha Outreach", PlanID: "pid_growth", OrgClientDomain: "alpha.io"}, nil).Once()
	workspaces.On("FetchWorkspace", mock.Anything, "kb").Return(nil, errors.New("timeout")).Once()

	uc := NewGetClientListUseCase(NewClientResolver(source), workspaces)
	out, err := uc.Execute(context.Background(), ClientListInput{IncludeDetails: true})

	require.NoError(t, err)
	require.Len(t, out.Clients, 3)
	assert.Equal(t, "Alpha Outreach", out.Clients[0].WorkspaceName)
	assert.Equal(t, "pid_growth", out.Clients[0].PlanID)
	assert.Equal(t, "ws-b", out.Clients[1].WorkspaceName)
	assert.Empty(t, out.Clients[2].PlanID)
	workspaces.AssertExpectations(t)
}

func TestClientListPlatformFilter(t *testing.T) {
	uc := NewGetClientListUseCase(NewClientResolver(testDirectory()), nil)

	out, err := uc.Execute(context.Background(), ClientListInput{Platform: "b"})
	require.NoError(t, err)
	require.Len(t, out.Clients, 1)
	assert.Equal(t, "Acme Corp", out.Clients[0].ClientName)

	_, err = uc.Execute(context.Background(), ClientListInput{Platform: "lemlist"})
	assert.True(t, IsToolError(err, CodeInvalidInput))
}

func TestWorkspaceInfo(t *testing.T) {
	workspaces := new(MockWorkspaceProvider)
	workspaces.On("FetchWorkspace", mock.Anything, "cred1").
		Return(&entity.WorkspaceDetails{Name: "Prism PR Outreach"}, nil).Once()
	uc := NewGetWorkspaceInfoUseCase(NewClientResolver(testDirectory()), workspaces)

	details, err := uc.Execute(context.Background(), WorkspaceInfoInput{WorkspaceID: "Prism PR"})

	require.NoError(t, err)
	assert.Equal(t, "Prism PR Outreach", details.Name)
	assert.Equal(t, "ws-prism-pr", details.ID)
}

// TestWorkspaceInfoEmailBison - Only Instantly exposes workspace metadata
func TestWorkspaceInfoEmailBison(t *testing.T) {
	workspaces := new(MockWorkspaceProvider)
	uc := NewGetWorkspaceInfoUseCase(NewClientResolver(testDirectory()), workspaces)

	_, err := uc.Execute(context.Background(), WorkspaceInfoInput{WorkspaceID: "acme"})

	var te *ToolError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, CodeUnsupported, te.Code)
	assert.Equal(t, "credential:emailbison:42", te.Scope)
	workspaces.AssertNotCalled(t, "FetchWorkspace", mock.Anything, mock.Anything)
}
