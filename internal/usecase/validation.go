package usecase

import (
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 365
)

// ResolveWindow builds the [start, end) query window. end defaults to now and
// start to end minus Days; either bound can be set on its own. Date-only
// values mean midnight UTC, so end_date=2025-11-08 excludes the 8th.
func ResolveWindow(in WindowInput, now time.Time) (entity.Window, error) {
	days := in.Days
	switch {
	case days == 0:
		days = DefaultWindowDays
	case days < 0 || days > MaxWindowDays:
		return entity.Window{}, invalidInput("days must be between 1 and %d", MaxWindowDays)
	}

	end := now.UTC()
	if strings.TrimSpace(in.EndDate) != "" {
		t, ok := parseDate(in.EndDate)
		if !ok {
			return entity.Window{}, invalidInput("end_date must be YYYY-MM-DD or an ISO-8601 datetime")
		}
		end = t
	}

	start := end.AddDate(0, 0, -days)
	if strings.TrimSpace(in.StartDate) != "" {
		t, ok := parseDate(in.StartDate)
		if !ok {
			return entity.Window{}, invalidInput("start_date must be YYYY-MM-DD or an ISO-8601 datetime")
		}
		start = t
	}

	if !start.Before(end) {
		return entity.Window{}, invalidInput("start_date must be before end_date")
	}
	return entity.Window{Start: start, End: end}, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func validateMetric(name string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(name))
	if m == "" {
		return "", invalidInput("metric is required, one of: %s", strings.Join(entity.MetricNames, ", "))
	}
	for _, known := range entity.MetricNames {
		if m == known {
			return m, nil
		}
	}
	return "", invalidInput("unknown metric %q, one of: %s", name, strings.Join(entity.MetricNames, ", "))
}

func parsePlatform(s string) (entity.Platform, error) {
	p, err := entity.ParsePlatform(s)
	if err != nil {
		return "", invalidInput("%v", err)
	}
	return p, nil
}
