package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// PlatformClient is implemented once per sending platform.
type PlatformClient interface {
	FetchReplyPage(ctx context.Context, apiKey string, w entity.Window, cursor string) (entity.MessagePage, error)
	FetchCounters(ctx context.Context, apiKey string, w entity.Window) (entity.Counters, error)
}

// WorkspaceProvider exposes workspace metadata; only Instantly has it.
type WorkspaceProvider interface {
	FetchWorkspace(ctx context.Context, apiKey string) (*entity.WorkspaceDetails, error)
}

// Platforms routes a directory entry to its platform client.
type Platforms map[entity.Platform]PlatformClient

func (p Platforms) For(e entity.DirectoryEntry) (PlatformClient, error) {
	c, ok := p[e.Platform]
	if !ok || c == nil {
		return nil, &ToolError{
			Code:    CodeUnsupported,
			Message: "platform " + string(e.Platform) + " is not configured",
			Scope:   e.Scope(),
		}
	}
	return c, nil
}

type ReportNotifier interface {
	Name() string
	Notify(ctx context.Context, report HealthReport) error
}
