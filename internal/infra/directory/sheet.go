package directory

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration"
)

// SheetSource reads the credential directory from a Google Sheet shared as
// view-only, one tab per platform. Columns: A identifier, B API key,
// C workspace name, D client name.
type SheetSource struct {
	sheetURL string
	tabs     map[entity.Platform]string
	http     *http.Client
}

func NewSheetSource(sheetURL string, tabs map[entity.Platform]string, timeout time.Duration) *SheetSource {
	return &SheetSource{
		sheetURL: sheetURL,
		tabs:     tabs,
		http:     &http.Client{Timeout: timeout},
	}
}

func (s *SheetSource) Load(ctx context.Context) ([]entity.DirectoryEntry, error) {
	var entries []entity.DirectoryEntry
	// Fixed order keeps the directory deterministic across loads.
	for _, p := range []entity.Platform{entity.PlatformInstantly, entity.PlatformEmailBison} {
		gid, ok := s.tabs[p]
		if !ok || gid == "" {
			continue
		}
		rows, err := s.fetchTab(ctx, gid)
		if err != nil {
			return nil, fmt.Errorf("sheet tab %s (%s): %w", gid, p, err)
		}
		tab := ParseRows(p, rows)
		log.Printf("📄 Sheets: loaded %d %s workspaces (gid=%s)", len(tab), p, gid)
		entries = append(entries, tab...)
	}
	return entries, nil
}

func (s *SheetSource) fetchTab(ctx context.Context, gid string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ExportURL(s.sheetURL, gid), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &integration.TransportError{Service: "sheets", Err: err}
	}
	defer resp.Body.Close()

	if err := integration.CheckStatus("sheets", resp); err != nil {
		return nil, err
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// ExportURL turns an editor link into the CSV export link of one tab.
func ExportURL(sheetURL, gid string) string {
	base := sheetURL
	if i := strings.Index(base, "/edit"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimRight(base, "/")
	return fmt.Sprintf("%s/export?format=csv&gid=%s", base, gid)
}

// ParseRows converts raw CSV rows to entries, skipping blanks and a header
// row if the first row looks like one.
func ParseRows(platform entity.Platform, rows [][]string) []entity.DirectoryEntry {
	entries := make([]entity.DirectoryEntry, 0, len(rows))
	for idx, row := range rows {
		if len(row) < 2 {
			continue
		}
		id := cell(row, 0)
		key := cell(row, 1)
		if id == "" || key == "" {
			continue
		}
		if idx == 0 && looksLikeHeader(id, key) {
			continue
		}

		entries = append(entries, newEntry(platform, id, key, cell(row, 2), cell(row, 3)))
	}
	return entries
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func looksLikeHeader(id, key string) bool {
	lid := strings.ToLower(id)
	return strings.Contains(lid, "workspace") ||
		strings.Contains(lid, "id") ||
		strings.Contains(strings.ToLower(key), "api")
}
