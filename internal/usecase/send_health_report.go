package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// SendHealthReportUseCase pushes the overview to every configured notifier.
// One notifier failing does not stop the others.
type SendHealthReportUseCase struct {
	Overview  *MultiOverviewUseCase
	Notifiers []ReportNotifier
	Now       func() time.Time
}

func NewSendHealthReportUseCase(overview *MultiOverviewUseCase, notifiers ...ReportNotifier) *SendHealthReportUseCase {
	return &SendHealthReportUseCase{Overview: overview, Notifiers: notifiers, Now: time.Now}
}

func (uc *SendHealthReportUseCase) Execute(ctx context.Context, input MultiOverviewInput) (*HealthReportOutput, error) {
	overview, err := uc.Overview.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	report := HealthReport{
		EventID:     uuid.NewString(),
		GeneratedAt: uc.Now().UTC().Format(time.RFC3339),
		Overview:    *overview,
	}
	for _, row := range overview.Workspaces {
		if row.Health == entity.HealthAtRisk {
			report.AtRisk = append(report.AtRisk, row)
		}
	}

	out := &HealthReportOutput{EventID: report.EventID, AtRisk: len(report.AtRisk), Delivered: []string{}}
	for _, n := range uc.Notifiers {
		if err := n.Notify(ctx, report); err != nil {
			log.Printf("❌ Report %s: %s failed: %v", report.EventID, n.Name(), err)
			if out.Failed == nil {
				out.Failed = make(map[string]string)
			}
			out.Failed[n.Name()] = err.Error()
			continue
		}
		out.Delivered = append(out.Delivered, n.Name())
	}
	log.Printf("📨 Report %s: at_risk=%d delivered=%v", report.EventID, out.AtRisk, out.Delivered)
	return out, nil
}
