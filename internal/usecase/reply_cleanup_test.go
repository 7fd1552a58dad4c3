package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanReplyBody(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "gmail quote header",
			body:     "Sounds great, let's talk Tuesday.\n\nOn Mon, Nov 3, 2025 at 10:00 AM John <john@acme.com> wrote:\n> Hi Jane,\n> quick question",
			expected: "Sounds great, let's talk Tuesday.",
		},
		{
			name:     "gmail header wrapped over two lines",
			body:     "Yes please send pricing.\nOn Mon, Nov 3, 2025 at 10:00 AM John Smith <john@acme.com>\nwrote:\n> earlier text",
			expected: "Yes please send pricing.",
		},
		{
			name:     "outlook from block",
			body:     "Interested, call me.\n\nFrom: John <john@acme.com>\nSent: Monday\nSubject: Intro",
			expected: "Interested, call me.",
		},
		{
			name:     "original message rule",
			body:     "Count me in.\n-----Original Message-----\nFrom: someone",
			expected: "Count me in.",
		},
		{
			name:     "underscore rule",
			body:     "Happy to chat.\n________________________________\nFrom: someone",
			expected: "Happy to chat.",
		},
		{
			name:     "signature delimiter",
			body:     "Let's do it.\n-- \nJane Doe\nCEO",
			expected: "Let's do it.",
		},
		{
			name:     "sent from mobile",
			body:     "Works for me.\nSent from my iPhone",
			expected: "Works for me.",
		},
		{
			name:     "two blank lines",
			body:     "Send the deck.\n\n\nJane\nAcme Inc.",
			expected: "Send the deck.",
		},
		{
			name:     "quoted lines dropped",
			body:     "Great.\n> old line\nThursday works.",
			expected: "Great.\nThursday works.",
		},
		{
			name:     "windows line endings",
			body:     "Yes.\r\nSent from Outlook",
			expected: "Yes.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanReplyBody(tc.body))
		})
	}
}

// TestCleanReplyBodyKeepsSingleDash - A lone dash is not a signature delimiter
func TestCleanReplyBodyKeepsSingleDash(t *testing.T) {
	body := "Options:\n- monthly\n- yearly"
	assert.Equal(t, body, CleanReplyBody(body))
}

func TestSummarizeReply(t *testing.T) {
	body := "Hi Sam,\nThanks for reaching out to us.\nWe would love to see a demo next week.\nPlease send some times.\nAlso looping in our CTO."

	summary := SummarizeReply(body, DefaultSummaryLength)

	assert.Equal(t, "Thanks for reaching out to us. We would love to see a demo next week. Please send some times.", summary)
}

func TestSummarizeReplyAutoReply(t *testing.T) {
	assert.Equal(t, "[Auto-reply: Out of office]", SummarizeReply("Out of Office until Monday.", 200))
	assert.Equal(t, "[Auto-reply: Out of office]", SummarizeReply("Automatic reply: I am away", 200))
}

func TestSummarizeReplyEmpty(t *testing.T) {
	assert.Equal(t, "[Reply content not available]", SummarizeReply("", 200))
	assert.Equal(t, "[Reply content not available]", SummarizeReply("> only quoted text", 200))
}

// TestSummarizeReplyShortLines - Short lines are used when nothing longer exists
func TestSummarizeReplyShortLines(t *testing.T) {
	assert.Equal(t, "Yes! Call me", SummarizeReply("Yes!\nCall me", 200))
}

func TestSummarizeReplyTruncates(t *testing.T) {
	long := strings.Repeat("interested ", 40)

	summary := SummarizeReply(long, 200)

	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.Equal(t, 203, len([]rune(summary)))
}
