package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultSummaryLength = 200

	replyUnavailable = "[Reply content not available]"
	autoReplyMarker  = "[Auto-reply: Out of office]"
)

var (
	gmailHeader    = regexp.MustCompile(`(?i)^on\s.+wrote:\s*$`)
	originalHeader = regexp.MustCompile(`(?i)^-{2,}\s*original message\s*-{2,}$`)
	outlookRule    = regexp.MustCompile(`^_{10,}$`)
	sigDelimiter   = regexp.MustCompile(`^-{2,}\s*$`)
	sentFrom       = regexp.MustCompile(`(?i)^sent from\b`)
)

// CleanReplyBody strips quoted history and signatures from a reply. Rules,
// applied line by line from the top, the first match ends the body:
//
//   - "On <date>, <who> wrote:" (also when "wrote:" wraps to the next line)
//   - "From:" after a blank line (Outlook quoted header)
//   - "-----Original Message-----" and "__________" rules
//   - signature delimiters "--", "-- ", "---"
//   - "Sent from ..." mobile footers
//   - two consecutive blank lines
//
// Lines starting with ">" are dropped wherever they appear.
func CleanReplyBody(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(body), "\n")

	kept := make([]string, 0, len(lines))
	blankRun := 0
	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" {
			blankRun++
			if blankRun >= 2 {
				break
			}
			kept = append(kept, "")
			continue
		}
		prevBlank := blankRun > 0
		blankRun = 0

		if isQuoteHeader(line, lines, i, prevBlank) ||
			sigDelimiter.MatchString(raw) ||
			sentFrom.MatchString(line) {
			break
		}
		if strings.HasPrefix(line, ">") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isQuoteHeader(line string, lines []string, i int, prevBlank bool) bool {
	if gmailHeader.MatchString(line) || originalHeader.MatchString(line) || outlookRule.MatchString(line) {
		return true
	}
	if prevBlank && strings.HasPrefix(line, "From:") {
		return true
	}
	// Gmail wraps long headers: "On Mon, 3 Nov 2025 at 10:00, Jane <j@x.com>" / "wrote:"
	if strings.HasPrefix(strings.ToLower(line), "on ") && i+1 < len(lines) {
		next := strings.ToLower(strings.TrimSpace(lines[i+1]))
		return strings.HasSuffix(next, "wrote:")
	}
	return false
}

// SummarizeReply returns the first meaningful lines of the cleaned body,
// capped at maxLen characters.
func SummarizeReply(body string, maxLen int) string {
	clean := CleanReplyBody(body)
	if clean == "" {
		return replyUnavailable
	}

	lower := strings.ToLower(clean)
	if strings.HasPrefix(lower, "out of office") || strings.HasPrefix(lower, "automatic reply") {
		return autoReplyMarker
	}

	var lines, meaningful []string
	for _, l := range strings.Split(clean, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
		// greetings like "Hi John," carry nothing
		if utf8.RuneCountInString(l) > 10 {
			meaningful = append(meaningful, l)
		}
	}
	pick := meaningful
	if len(pick) == 0 {
		pick = lines
	}
	if len(pick) > 3 {
		pick = pick[:3]
	}

	summary := strings.TrimSpace(strings.Join(pick, " "))
	if maxLen > 0 && utf8.RuneCountInString(summary) > maxLen {
		summary = string([]rune(summary)[:maxLen]) + "..."
	}
	if summary == "" {
		return replyUnavailable
	}
	return summary
}
