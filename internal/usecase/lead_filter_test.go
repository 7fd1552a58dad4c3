package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

func TestSenderFilterExcluded(t *testing.T) {
	f := NewSenderFilter([]string{"@ligue.com.br", "agency.io"}, []string{"prospeqt"}, []string{"paypal"})

	cases := map[string]bool{
		"noreply@vendor.com":           true,
		"No-Reply@Vendor.com":          true,
		"mailer-daemon@googlemail.com": true,
		"postmaster@acme.com":          true,
		"billing@paypal.com":           true,
		"sam@ligue.com.br":             true,
		"sam@mail.agency.io":           true,
		"jane@prospeqt.co":             true,
		"not-an-address":               true,
		"":                             true,
		"john@acme.com":                false,
		"john@notagency.io":            false,
		"replies@acme.com":             false,
	}
	for addr, expected := range cases {
		assert.Equal(t, expected, f.Excluded(addr), addr)
	}
}

// TestLatestBySenderKeepsLaterReply - Two replies from one sender keep the later one
func TestLatestBySenderKeepsLaterReply(t *testing.T) {
	early := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
	late := time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)

	out := LatestBySender([]entity.InboundMessage{
		{ID: "m2", FromEmail: "John@Acme.com", Timestamp: late},
		{ID: "m1", FromEmail: "john@acme.com", Timestamp: early},
		{ID: "m3", FromEmail: "ann@beta.com", Timestamp: early},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "m2", out[0].ID)
	assert.Equal(t, "john@acme.com", out[0].FromEmail)
	assert.Equal(t, "m3", out[1].ID)
}

// TestLatestBySenderOrdering - Newest first, ties by email
func TestLatestBySenderOrdering(t *testing.T) {
	ts := time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)

	out := LatestBySender([]entity.InboundMessage{
		{ID: "c", FromEmail: "carl@x.com", Timestamp: ts},
		{ID: "a", FromEmail: "anna@x.com", Timestamp: ts},
		{ID: "z", FromEmail: "zoe@x.com", Timestamp: ts.Add(time.Hour)},
	})

	ids := []string{out[0].ID, out[1].ID, out[2].ID}
	assert.Equal(t, []string{"z", "a", "c"}, ids)
}
