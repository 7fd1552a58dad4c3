package entity

import (
	"math"
	"time"
)

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LastDay is the inclusive calendar day the window ends on, which is what
// date-granular analytics endpoints expect.
func (w Window) LastDay() time.Time {
	return w.End.Add(-time.Nanosecond)
}

type Counters struct {
	Sent          int64 `json:"sent"`
	Contacted     int64 `json:"contacted"`
	Opened        int64 `json:"opened"`
	Replied       int64 `json:"replied"`
	Bounced       int64 `json:"bounced"`
	Unsubscribed  int64 `json:"unsubscribed"`
	Interested    int64 `json:"interested"`
	Opportunities int64 `json:"opportunities"`
}

func (c Counters) Add(o Counters) Counters {
	return Counters{
		Sent:          c.Sent + o.Sent,
		Contacted:     c.Contacted + o.Contacted,
		Opened:        c.Opened + o.Opened,
		Replied:       c.Replied + o.Replied,
		Bounced:       c.Bounced + o.Bounced,
		Unsubscribed:  c.Unsubscribed + o.Unsubscribed,
		Interested:    c.Interested + o.Interested,
		Opportunities: c.Opportunities + o.Opportunities,
	}
}

type Rates struct {
	OpenRate        float64 `json:"open_rate"`
	ReplyRate       float64 `json:"reply_rate"`
	BounceRate      float64 `json:"bounce_rate"`
	UnsubscribeRate float64 `json:"unsubscribe_rate"`
	InterestedRate  float64 `json:"interested_rate"`
}

// Percent returns count/denominator*100 rounded to two decimals, and 0 when
// the denominator is 0.
func Percent(count, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(denominator)*100*100) / 100
}

func DeriveRates(c Counters) Rates {
	return Rates{
		OpenRate:        Percent(c.Opened, c.Sent),
		ReplyRate:       Percent(c.Replied, c.Sent),
		BounceRate:      Percent(c.Bounced, c.Sent),
		UnsubscribeRate: Percent(c.Unsubscribed, c.Sent),
		InterestedRate:  Percent(c.Interested, c.Replied),
	}
}

const AggregateScope = "aggregate"

type StatsSnapshot struct {
	Scope      string   `json:"scope"`
	ClientName string   `json:"client_name,omitempty"`
	Identifier string   `json:"workspace_id,omitempty"`
	Platform   Platform `json:"platform,omitempty"`
	Window     Window   `json:"window"`
	Counters   Counters `json:"counters"`
	Rates      Rates    `json:"rates"`
	Health     Health   `json:"health"`
}

func NewSnapshot(scope string, w Window, c Counters) StatsSnapshot {
	return StatsSnapshot{
		Scope:    scope,
		Window:   w,
		Counters: c,
		Rates:    DeriveRates(c),
		Health:   ClassifyHealth(c.Sent, c.Opportunities),
	}
}

// Metric looks up a counter or rate by its JSON name.
func (s StatsSnapshot) Metric(name string) (float64, bool) {
	c, r := s.Counters, s.Rates
	switch name {
	case "sent":
		return float64(c.Sent), true
	case "contacted":
		return float64(c.Contacted), true
	case "opened":
		return float64(c.Opened), true
	case "replied":
		return float64(c.Replied), true
	case "bounced":
		return float64(c.Bounced), true
	case "unsubscribed":
		return float64(c.Unsubscribed), true
	case "interested":
		return float64(c.Interested), true
	case "opportunities":
		return float64(c.Opportunities), true
	case "open_rate":
		return r.OpenRate, true
	case "reply_rate":
		return r.ReplyRate, true
	case "bounce_rate":
		return r.BounceRate, true
	case "unsubscribe_rate":
		return r.UnsubscribeRate, true
	case "interested_rate":
		return r.InterestedRate, true
	}
	return 0, false
}

var MetricNames = []string{
	"sent", "contacted", "opened", "replied", "bounced", "unsubscribed",
	"interested", "opportunities",
	"open_rate", "reply_rate", "bounce_rate", "unsubscribe_rate", "interested_rate",
}
