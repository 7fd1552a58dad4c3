package usecase

import (
	"context"
	"log"
	"time"
)

type GetCampaignStatsUseCase struct {
	Aggregator *StatsAggregator
}

func NewGetCampaignStatsUseCase(aggregator *StatsAggregator) *GetCampaignStatsUseCase {
	return &GetCampaignStatsUseCase{Aggregator: aggregator}
}

func (uc *GetCampaignStatsUseCase) Execute(ctx context.Context, input CampaignStatsInput) (*CampaignStatsOutput, error) {
	window, err := ResolveWindow(input.WindowInput, uc.Aggregator.Now())
	if err != nil {
		return nil, err
	}
	platform, err := parsePlatform(input.Platform)
	if err != nil {
		return nil, err
	}

	entry, err := uc.Aggregator.Resolver.Resolve(ctx, input.WorkspaceID, platform)
	if err != nil {
		return nil, err
	}

	snap, err := uc.Aggregator.Snapshot(ctx, entry, window)
	if err != nil {
		return nil, err
	}
	log.Printf("📊 Stats: %s sent=%d replies=%d opps=%d", entry.Label(),
		snap.Counters.Sent, snap.Counters.Replied, snap.Counters.Opportunities)

	return &CampaignStatsOutput{
		WorkspaceID:   entry.Identifier,
		ClientName:    entry.ClientName,
		StartDate:     window.Start.Format(time.RFC3339),
		EndDate:       window.End.Format(time.RFC3339),
		EmailsSent:    snap.Counters.Sent,
		Replies:       snap.Counters.Replied,
		Opportunities: snap.Counters.Opportunities,
		ReplyRate:     snap.Rates.ReplyRate,
		Snapshot:      snap,
	}, nil
}
