package mail

import "github.com/xavierca1/ligue-leads/internal/usecase"

type DigestData struct {
	StartDate string
	EndDate   string
	Total     int
	AtRisk    []usecase.OverviewRow
	EventID   string
}

type DigestSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       []string
}
