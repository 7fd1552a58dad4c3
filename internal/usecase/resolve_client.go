package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// notFoundPreview caps how many clients a NOT_FOUND message lists.
const notFoundPreview = 10

type ClientResolver struct {
	Source entity.DirectorySource
}

func NewClientResolver(source entity.DirectorySource) *ClientResolver {
	return &ClientResolver{Source: source}
}

// Entries loads a fresh directory snapshot, optionally narrowed to one platform.
func (r *ClientResolver) Entries(ctx context.Context, platform entity.Platform) ([]entity.DirectoryEntry, error) {
	entries, err := r.Source.Load(ctx)
	if err != nil {
		return nil, &ToolError{
			Code:      CodeDirectoryUnavailable,
			Message:   "could not load the client directory: " + err.Error(),
			Retryable: true,
			cause:     err,
		}
	}
	entries = entity.DedupeEntries(entries)
	if platform == "" {
		return entries, nil
	}
	out := entries[:0:0]
	for _, e := range entries {
		if e.Platform == platform {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ClientResolver) Resolve(ctx context.Context, query string, platform entity.Platform) (entity.DirectoryEntry, error) {
	entries, err := r.Entries(ctx, platform)
	if err != nil {
		return entity.DirectoryEntry{}, err
	}
	return ResolveClient(entries, query)
}

// ResolveClient maps a typed client reference to one directory entry.
//
// Precedence: exact identifier (case-sensitive), then a whole-value
// case-insensitive match on any name field, then case-insensitive substring.
// A tier that yields more than one entry stops the search with
// AMBIGUOUS_MATCH.
func ResolveClient(entries []entity.DirectoryEntry, query string) (entity.DirectoryEntry, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return entity.DirectoryEntry{}, invalidInput("workspace_id is required")
	}

	// 1. Exact identifier
	var hits []entity.DirectoryEntry
	for _, e := range entries {
		if e.Identifier == q {
			hits = append(hits, e)
		}
	}
	if res, done, err := settle(q, hits); done {
		return res, err
	}

	// 2. Whole-value, case-insensitive
	lq := strings.ToLower(q)
	hits = nil
	for _, e := range entries {
		for _, f := range searchFields(e) {
			if f == lq {
				hits = append(hits, e)
				break
			}
		}
	}
	if res, done, err := settle(q, hits); done {
		return res, err
	}

	// 3. Substring, case-insensitive
	hits = nil
	for _, e := range entries {
		for _, f := range searchFields(e) {
			if f != "" && strings.Contains(f, lq) {
				hits = append(hits, e)
				break
			}
		}
	}
	if res, done, err := settle(q, hits); done {
		return res, err
	}

	return entity.DirectoryEntry{}, notFound(q, entries)
}

func searchFields(e entity.DirectoryEntry) []string {
	return []string{
		strings.ToLower(e.Identifier),
		strings.ToLower(e.ClientName),
		strings.ToLower(e.WorkspaceName),
		strings.ToLower(e.PersonName),
	}
}

func settle(query string, hits []entity.DirectoryEntry) (entity.DirectoryEntry, bool, error) {
	switch len(hits) {
	case 0:
		return entity.DirectoryEntry{}, false, nil
	case 1:
		return hits[0], true, nil
	}
	candidates := make([]string, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, fmt.Sprintf("%s [%s]", h.Label(), h.Platform))
	}
	return entity.DirectoryEntry{}, true, &ToolError{
		Code:       CodeAmbiguousMatch,
		Message:    fmt.Sprintf("multiple clients match %q, use the exact workspace_id or a more specific name", query),
		Candidates: candidates,
	}
}

func notFound(query string, entries []entity.DirectoryEntry) error {
	preview := entries
	if len(preview) > notFoundPreview {
		preview = preview[:notFoundPreview]
	}
	available := make([]string, 0, len(preview))
	for _, e := range preview {
		available = append(available, e.Label())
	}
	msg := fmt.Sprintf("client %q not found", query)
	if len(entries) > 0 {
		msg += fmt.Sprintf("; %d clients available, use get_client_list to see all", len(entries))
	}
	return &ToolError{Code: CodeNotFound, Message: msg, Candidates: available}
}
