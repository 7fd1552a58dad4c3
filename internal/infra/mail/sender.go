package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-leads/internal/usecase"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Client health {{.StartDate}} → {{.EndDate}}</h2>
<p>{{len .AtRisk}} of {{.Total}} clients are at risk (2000+ emails sent, no opportunities).</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Client</th><th>Platform</th><th>Sent</th><th>Replies</th><th>Opportunities</th></tr>
{{range .AtRisk}}<tr><td>{{.WorkspaceName}}</td><td>{{.Platform}}</td><td>{{.EmailsSent}}</td><td>{{.Replies}}</td><td>{{.Opportunities}}</td></tr>
{{end}}</table>
<p style="color:#888">report {{.EventID}}</p>
`))

func NewDigestSender(host string, port int, user, password, from string, to []string) *DigestSender {
	return &DigestSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *DigestSender) Name() string { return "email" }

// Notify mails the at-risk digest. Reports with nobody at risk are skipped.
func (s *DigestSender) Notify(_ context.Context, report usecase.HealthReport) error {
	if len(report.AtRisk) == 0 || len(s.To) == 0 {
		return nil
	}

	body, err := RenderDigest(report)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To...)
	m.SetHeader("Subject", fmt.Sprintf("⚠️ %d clients at risk (%s → %s)",
		len(report.AtRisk), report.Overview.StartDate, report.Overview.EndDate))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func RenderDigest(report usecase.HealthReport) (string, error) {
	data := DigestData{
		StartDate: report.Overview.StartDate,
		EndDate:   report.Overview.EndDate,
		Total:     report.Overview.WorkspaceCount,
		AtRisk:    report.AtRisk,
		EventID:   report.EventID,
	}
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
