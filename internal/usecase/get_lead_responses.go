package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// DefaultMaxPages bounds how many upstream pages one lead query may read.
const DefaultMaxPages = 50

type GetLeadResponsesUseCase struct {
	Resolver   *ClientResolver
	Platforms  Platforms
	Filter     SenderFilter
	MaxPages   int
	SummaryLen int
	Now        func() time.Time
}

func NewGetLeadResponsesUseCase(resolver *ClientResolver, platforms Platforms, filter SenderFilter, maxPages int) *GetLeadResponsesUseCase {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &GetLeadResponsesUseCase{
		Resolver:   resolver,
		Platforms:  platforms,
		Filter:     filter,
		MaxPages:   maxPages,
		SummaryLen: DefaultSummaryLength,
		Now:        time.Now,
	}
}

func (uc *GetLeadResponsesUseCase) Execute(ctx context.Context, input LeadResponsesInput) (*LeadResponsesOutput, error) {
	// 1. Window and platform
	window, err := ResolveWindow(input.WindowInput, uc.Now())
	if err != nil {
		return nil, err
	}
	platform, err := parsePlatform(input.Platform)
	if err != nil {
		return nil, err
	}

	// 2. Client
	entry, err := uc.Resolver.Resolve(ctx, input.WorkspaceID, platform)
	if err != nil {
		return nil, err
	}
	log.Printf("🔎 Leads: %s (%s) %s → %s", entry.Label(), entry.Platform,
		window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	// 3. Extract
	leads, truncated, err := uc.Extract(ctx, entry, window)
	if err != nil {
		return nil, err
	}

	return &LeadResponsesOutput{
		WorkspaceID: entry.Identifier,
		ClientName:  entry.ClientName,
		Platform:    entry.Platform,
		StartDate:   window.Start.Format(time.RFC3339),
		EndDate:     window.End.Format(time.RFC3339),
		TotalLeads:  len(leads),
		Truncated:   truncated,
		Leads:       leads,
	}, nil
}

// Extract pages through the interested replies of one credential, drops
// internal and system senders, and keeps the latest reply per sender.
// Any page failure aborts the whole call.
func (uc *GetLeadResponsesUseCase) Extract(ctx context.Context, entry entity.DirectoryEntry, window entity.Window) ([]entity.LeadRecord, bool, error) {
	client, err := uc.Platforms.For(entry)
	if err != nil {
		return nil, false, err
	}

	var (
		received  []entity.InboundMessage
		cursor    string
		truncated bool
		fetched   int
	)
	for page := 1; ; page++ {
		if page > uc.MaxPages {
			truncated = true
			log.Printf("⚠️ Leads: %s hit the %d page cap, result truncated", entry.Label(), uc.MaxPages)
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, false, classifyUpstream(err, entry.Scope())
		}

		res, err := client.FetchReplyPage(ctx, entry.Credential, window, cursor)
		if err != nil {
			return nil, false, duringPagination(classifyUpstream(err, entry.Scope()), page)
		}
		fetched += len(res.Messages)

		for _, m := range res.Messages {
			if !m.Received {
				continue
			}
			if m.Timestamp.Before(window.Start) || !m.Timestamp.Before(window.End) {
				continue
			}
			if uc.Filter.Excluded(m.FromEmail) {
				continue
			}
			received = append(received, m)
		}

		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}

	unique := LatestBySender(received)
	leads := make([]entity.LeadRecord, 0, len(unique))
	for _, m := range unique {
		leads = append(leads, toLeadRecord(m, uc.SummaryLen))
	}

	log.Printf("✅ Leads: %s fetched=%d replies=%d unique=%d", entry.Label(), fetched, len(received), len(leads))
	return leads, truncated, nil
}
