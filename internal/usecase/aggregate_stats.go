package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// StatsAggregator reads analytics counters per credential and combines them.
type StatsAggregator struct {
	Resolver  *ClientResolver
	Platforms Platforms
	Now       func() time.Time
}

func NewStatsAggregator(resolver *ClientResolver, platforms Platforms) *StatsAggregator {
	return &StatsAggregator{Resolver: resolver, Platforms: platforms, Now: time.Now}
}

// Snapshot makes exactly one analytics call for the entry.
func (a *StatsAggregator) Snapshot(ctx context.Context, entry entity.DirectoryEntry, window entity.Window) (entity.StatsSnapshot, error) {
	client, err := a.Platforms.For(entry)
	if err != nil {
		return entity.StatsSnapshot{}, err
	}
	counters, err := client.FetchCounters(ctx, entry.Credential, window)
	if err != nil {
		return entity.StatsSnapshot{}, classifyUpstream(err, entry.Scope())
	}

	snap := entity.NewSnapshot(entry.Scope(), window, counters)
	snap.ClientName = entry.ClientName
	snap.Identifier = entry.Identifier
	snap.Platform = entry.Platform
	return snap, nil
}

// Collect snapshots every entry in order; the first failure aborts.
func (a *StatsAggregator) Collect(ctx context.Context, entries []entity.DirectoryEntry, window entity.Window) ([]entity.StatsSnapshot, error) {
	snaps := make([]entity.StatsSnapshot, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, classifyUpstream(err, e.Scope())
		}
		s, err := a.Snapshot(ctx, e, window)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, nil
}

// Aggregate sums raw counters and derives rates from the sums. Per-client
// rates are never averaged.
func Aggregate(snaps []entity.StatsSnapshot, window entity.Window) entity.StatsSnapshot {
	var total entity.Counters
	for _, s := range snaps {
		total = total.Add(s.Counters)
	}
	return entity.NewSnapshot(entity.AggregateScope, window, total)
}

// Rank orders snapshots by metric, highest first, ties by client name.
func Rank(snaps []entity.StatsSnapshot, metric string, limit int) []entity.StatsSnapshot {
	out := append([]entity.StatsSnapshot(nil), snaps...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, _ := out[i].Metric(metric)
		vj, _ := out[j].Metric(metric)
		if vi != vj {
			return vi > vj
		}
		return out[i].ClientName < out[j].ClientName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BelowThreshold keeps snapshots whose metric is strictly under cutoff,
// lowest first.
func BelowThreshold(snaps []entity.StatsSnapshot, metric string, cutoff float64) []entity.StatsSnapshot {
	var out []entity.StatsSnapshot
	for _, s := range snaps {
		if v, _ := s.Metric(metric); v < cutoff {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, _ := out[i].Metric(metric)
		vj, _ := out[j].Metric(metric)
		if vi != vj {
			return vi < vj
		}
		return out[i].ClientName < out[j].ClientName
	})
	return out
}

// selectEntries resolves each requested client, or returns the whole
// directory when none are named. Repeats collapse to one entry.
func (a *StatsAggregator) selectEntries(ctx context.Context, clients []string, platform entity.Platform) ([]entity.DirectoryEntry, error) {
	entries, err := a.Resolver.Entries(ctx, platform)
	if err != nil {
		return nil, err
	}

	var named []string
	for _, c := range clients {
		if strings.TrimSpace(c) != "" {
			named = append(named, c)
		}
	}
	if len(named) == 0 {
		return entries, nil
	}

	seen := make(map[string]struct{}, len(named))
	out := make([]entity.DirectoryEntry, 0, len(named))
	for _, q := range named {
		e, err := ResolveClient(entries, q)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[e.Scope()]; dup {
			continue
		}
		seen[e.Scope()] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

func (a *StatsAggregator) collectFor(ctx context.Context, clients []string, platformName string, w WindowInput) ([]entity.StatsSnapshot, entity.Window, error) {
	_, snaps, window, err := a.collectEntries(ctx, clients, platformName, w)
	return snaps, window, err
}

// collectEntries also returns the resolved entries, index-aligned with the
// snapshots.
func (a *StatsAggregator) collectEntries(ctx context.Context, clients []string, platformName string, w WindowInput) ([]entity.DirectoryEntry, []entity.StatsSnapshot, entity.Window, error) {
	window, err := ResolveWindow(w, a.Now())
	if err != nil {
		return nil, nil, entity.Window{}, err
	}
	platform, err := parsePlatform(platformName)
	if err != nil {
		return nil, nil, entity.Window{}, err
	}
	entries, err := a.selectEntries(ctx, clients, platform)
	if err != nil {
		return nil, nil, entity.Window{}, err
	}
	log.Printf("📊 Stats: %d clients %s → %s", len(entries),
		window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	snaps, err := a.Collect(ctx, entries, window)
	if err != nil {
		return nil, nil, entity.Window{}, err
	}
	return entries, snaps, window, nil
}

func (a *StatsAggregator) MultiClientStats(ctx context.Context, input MultiStatsInput) (*MultiStatsOutput, error) {
	snaps, window, err := a.collectFor(ctx, input.Clients, input.Platform, input.WindowInput)
	if err != nil {
		return nil, err
	}
	return &MultiStatsOutput{
		StartDate:   window.Start.Format(time.RFC3339),
		EndDate:     window.End.Format(time.RFC3339),
		ClientCount: len(snaps),
		Totals:      Aggregate(snaps, window),
		Clients:     snaps,
	}, nil
}

func (a *StatsAggregator) RankClients(ctx context.Context, input RankInput) (*RankedOutput, error) {
	metric, err := validateMetric(input.Metric)
	if err != nil {
		return nil, err
	}
	if input.Limit < 0 {
		return nil, invalidInput("limit must not be negative")
	}
	snaps, window, err := a.collectFor(ctx, input.Clients, input.Platform, input.WindowInput)
	if err != nil {
		return nil, err
	}
	ranked := Rank(snaps, metric, input.Limit)
	return &RankedOutput{
		Metric:    metric,
		StartDate: window.Start.Format(time.RFC3339),
		EndDate:   window.End.Format(time.RFC3339),
		Count:     len(ranked),
		Clients:   ranked,
	}, nil
}

func (a *StatsAggregator) FindUnderperforming(ctx context.Context, input ThresholdInput) (*RankedOutput, error) {
	metric, err := validateMetric(input.Metric)
	if err != nil {
		return nil, err
	}
	if input.Threshold == nil {
		return nil, invalidInput("threshold is required")
	}
	snaps, window, err := a.collectFor(ctx, input.Clients, input.Platform, input.WindowInput)
	if err != nil {
		return nil, err
	}
	cutoff := *input.Threshold
	below := BelowThreshold(snaps, metric, cutoff)
	return &RankedOutput{
		Metric:    metric,
		Threshold: &cutoff,
		StartDate: window.Start.Format(time.RFC3339),
		EndDate:   window.End.Format(time.RFC3339),
		Count:     len(below),
		Clients:   below,
	}, nil
}
