package entity

import "fmt"

type Health string

const (
	HealthHealthy Health = "healthy"
	HealthAtRisk  Health = "at_risk"
	HealthEarly   Health = "early"
)

// MinEmailsForHealth is the send volume below which a client is still warming up.
const MinEmailsForHealth = 2000

func ClassifyHealth(sent, opportunities int64) Health {
	if sent < MinEmailsForHealth {
		return HealthEarly
	}
	if opportunities == 0 {
		return HealthAtRisk
	}
	return HealthHealthy
}

type HealthRule struct {
	Key         Health `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func HealthRules() []HealthRule {
	return []HealthRule{
		{
			Key:         HealthHealthy,
			Label:       "🟢 Healthy",
			Description: fmt.Sprintf("At least 1 opportunity in the selected date range and %d+ emails sent.", MinEmailsForHealth),
		},
		{
			Key:         HealthAtRisk,
			Label:       "🔴 At Risk",
			Description: fmt.Sprintf("%d+ emails sent in the selected date range and 0 opportunities. This needs attention.", MinEmailsForHealth),
		},
		{
			Key:         HealthEarly,
			Label:       "🟡 Early",
			Description: fmt.Sprintf("Fewer than %d emails sent in the selected date range. Still warming up / not enough data yet.", MinEmailsForHealth),
		},
	}
}
