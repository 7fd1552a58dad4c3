package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// MockPlatformClient
type MockPlatformClient struct {
	mock.Mock
}

func (m *MockPlatformClient) FetchReplyPage(ctx context.Context, apiKey string, w entity.Window, cursor string) (entity.MessagePage, error) {
	args := m.Called(ctx, apiKey, w, cursor)
	return args.Get(0).(entity.MessagePage), args.Error(1)
}

func (m *MockPlatformClient) FetchCounters(ctx context.Context, apiKey string, w entity.Window) (entity.Counters, error) {
	args := m.Called(ctx, apiKey, w)
	return args.Get(0).(entity.Counters), args.Error(1)
}

// MockWorkspaceProvider
type MockWorkspaceProvider struct {
	mock.Mock
}

func (m *MockWorkspaceProvider) FetchWorkspace(ctx context.Context, apiKey string) (*entity.WorkspaceDetails, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WorkspaceDetails), args.Error(1)
}

// MockDirectorySource
type MockDirectorySource struct {
	mock.Mock
}

func (m *MockDirectorySource) Load(ctx context.Context) ([]entity.DirectoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DirectoryEntry), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
	name string
}

func (m *MockNotifier) Name() string { return m.name }

func (m *MockNotifier) Notify(ctx context.Context, report HealthReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// staticSource serves a fixed directory.
type staticSource []entity.DirectoryEntry

func (s staticSource) Load(context.Context) ([]entity.DirectoryEntry, error) {
	return append([]entity.DirectoryEntry(nil), s...), nil
}

func fixedNow() time.Time {
	return time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)
}

func testDirectory() staticSource {
	return staticSource{
		{ClientName: "Prism PR", Platform: entity.PlatformInstantly, Identifier: "ws-prism-pr", Credential: "cred1", WorkspaceName: "Prism PR"},
		{ClientName: "Prism Media", Platform: entity.PlatformInstantly, Identifier: "ws-prism-media", Credential: "cred2"},
		{ClientName: "Acme Corp", Platform: entity.PlatformEmailBison, Identifier: "42", Credential: "cred3", PersonName: "Jane Doe"},
	}
}
