package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type MultiOverviewInput struct {
	StartDate string
	EndDate   string
	Platform  string
}

// MultiOverviewUseCase builds the all-clients dashboard: per-client counters,
// health and totals. Unlike the tools, a date-only end_date here names the
// last day covered.
type MultiOverviewUseCase struct {
	Aggregator *StatsAggregator
	Workspaces WorkspaceProvider
}

func NewMultiOverviewUseCase(aggregator *StatsAggregator, workspaces WorkspaceProvider) *MultiOverviewUseCase {
	return &MultiOverviewUseCase{Aggregator: aggregator, Workspaces: workspaces}
}

func (uc *MultiOverviewUseCase) Execute(ctx context.Context, input MultiOverviewInput) (*MultiOverviewOutput, error) {
	// Year to date unless told otherwise.
	now := uc.Aggregator.Now().UTC()
	w := WindowInput{StartDate: input.StartDate, EndDate: input.EndDate}
	if w.StartDate == "" {
		w.StartDate = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	if w.EndDate == "" {
		w.EndDate = now.AddDate(0, 0, 1).Format("2006-01-02")
	} else if day, err := time.Parse("2006-01-02", strings.TrimSpace(w.EndDate)); err == nil {
		w.EndDate = day.AddDate(0, 0, 1).Format("2006-01-02")
	}

	entries, snaps, window, err := uc.Aggregator.collectEntries(ctx, nil, input.Platform, w)
	if err != nil {
		return nil, err
	}

	out := &MultiOverviewOutput{
		StartDate:      window.Start.Format("2006-01-02"),
		EndDate:        window.LastDay().Format("2006-01-02"),
		WorkspaceCount: len(snaps),
		Workspaces:     make([]OverviewRow, 0, len(snaps)),
		HealthRules:    entity.HealthRules(),
	}
	for i, s := range snaps {
		row := OverviewRow{
			WorkspaceID:   s.Identifier,
			WorkspaceName: s.ClientName,
			Label:         s.Identifier,
			Platform:      s.Platform,
			StartDate:     out.StartDate,
			EndDate:       out.EndDate,
			EmailsSent:    s.Counters.Sent,
			Replies:       s.Counters.Replied,
			Opportunities: s.Counters.Opportunities,
			Health:        s.Health,
		}
		if needsWorkspaceName(entries[i]) {
			if details := lookupWorkspace(ctx, uc.Workspaces, entries[i]); details != nil && details.Name != "" {
				row.WorkspaceName = details.Name
			}
		}
		log.Printf("📊 Overview: %s | %s -> %s | sent=%d replies=%d opps=%d status=%s",
			row.WorkspaceName, row.StartDate, row.EndDate, row.EmailsSent, row.Replies, row.Opportunities, row.Health)

		out.Totals.EmailsSent += row.EmailsSent
		out.Totals.Replies += row.Replies
		out.Totals.Opportunities += row.Opportunities
		out.Workspaces = append(out.Workspaces, row)
	}
	return out, nil
}
