package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// DefaultSystemSenders are address fragments that mark automated mail.
var DefaultSystemSenders = []string{
	"noreply", "no-reply", "donotreply", "do-not-reply",
	"mailer-daemon", "postmaster",
}

// SenderFilter decides which reply senders are not prospects.
type SenderFilter struct {
	// InternalDomains match the address domain or any subdomain of it.
	InternalDomains []string
	// InternalKeywords match anywhere in the address (team names, brands).
	InternalKeywords []string
	SystemSenders    []string
}

func NewSenderFilter(domains, keywords, extraSystem []string) SenderFilter {
	return SenderFilter{
		InternalDomains:  normalizeList(domains),
		InternalKeywords: normalizeList(keywords),
		SystemSenders:    normalizeList(append(append([]string{}, DefaultSystemSenders...), extraSystem...)),
	}
}

func (f SenderFilter) Excluded(address string) bool {
	addr := strings.ToLower(strings.TrimSpace(address))
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return true
	}
	domain := addr[at+1:]

	for _, d := range f.InternalDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	for _, k := range f.InternalKeywords {
		if strings.Contains(addr, k) {
			return true
		}
	}
	for _, s := range f.SystemSenders {
		if strings.Contains(addr, s) {
			return true
		}
	}
	return false
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.TrimPrefix(s, "@")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LatestBySender keeps one message per lowercased sender address, the one
// with the latest timestamp (first seen wins on a tie), newest first.
func LatestBySender(msgs []entity.InboundMessage) []entity.InboundMessage {
	byEmail := make(map[string]entity.InboundMessage, len(msgs))
	for _, m := range msgs {
		key := strings.ToLower(strings.TrimSpace(m.FromEmail))
		cur, ok := byEmail[key]
		if !ok || m.Timestamp.After(cur.Timestamp) {
			m.FromEmail = key
			byEmail[key] = m
		}
	}

	out := make([]entity.InboundMessage, 0, len(byEmail))
	for _, m := range byEmail {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].FromEmail < out[j].FromEmail
	})
	return out
}

func toLeadRecord(m entity.InboundMessage, summaryLen int) entity.LeadRecord {
	return entity.LeadRecord{
		Email:       m.FromEmail,
		DisplayName: strings.TrimSpace(m.FromName),
		BodyExcerpt: SummarizeReply(m.Body, summaryLen),
		ReplyBody:   CleanReplyBody(m.Body),
		Subject:     m.Subject,
		Timestamp:   m.Timestamp.UTC().Format(time.RFC3339),
		SourceID:    m.ID,
		ThreadID:    m.ThreadID,
	}
}
