package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowDefaults(t *testing.T) {
	now := time.Date(2025, 11, 8, 13, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(WindowInput{}, now)

	require.NoError(t, err)
	assert.Equal(t, now, w.End)
	assert.Equal(t, now.AddDate(0, 0, -7), w.Start)
}

func TestResolveWindowExplicitDates(t *testing.T) {
	w, err := ResolveWindow(WindowInput{StartDate: "2025-11-01", EndDate: "2025-11-08"}, fixedNow())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), w.End)
}

// TestResolveWindowEndOnly - start follows end minus days when only end is given
func TestResolveWindowEndOnly(t *testing.T) {
	w, err := ResolveWindow(WindowInput{Days: 3, EndDate: "2025-10-10T12:00:00Z"}, fixedNow())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC), w.Start)
}

func TestResolveWindowRFC3339Offset(t *testing.T) {
	w, err := ResolveWindow(WindowInput{StartDate: "2025-11-01T09:00:00-03:00"}, fixedNow())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC), w.Start)
}

func TestResolveWindowInvalid(t *testing.T) {
	cases := map[string]WindowInput{
		"negative days":   {Days: -1},
		"too many days":   {Days: 366},
		"bad start":       {StartDate: "01/11/2025"},
		"bad end":         {EndDate: "yesterday"},
		"start after end": {StartDate: "2025-11-09", EndDate: "2025-11-01"},
		"empty window":    {StartDate: "2025-11-01", EndDate: "2025-11-01"},
	}
	for name, in := range cases {
		_, err := ResolveWindow(in, fixedNow())
		assert.True(t, IsToolError(err, CodeInvalidInput), name)
	}
}

func TestValidateMetric(t *testing.T) {
	m, err := validateMetric(" Open_Rate ")
	require.NoError(t, err)
	assert.Equal(t, "open_rate", m)

	_, err = validateMetric("")
	assert.True(t, IsToolError(err, CodeInvalidInput))
}
