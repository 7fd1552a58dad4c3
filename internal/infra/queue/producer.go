package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// Publisher is the slice of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ReportProducer publishes health reports to the reports exchange.
type ReportProducer struct {
	Ch Publisher
}

func NewReportProducer(ch Publisher) *ReportProducer {
	return &ReportProducer{Ch: ch}
}

func (p *ReportProducer) Name() string { return "rabbitmq" }

func (p *ReportProducer) Notify(ctx context.Context, report usecase.HealthReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    report.EventID,
			Type:         "health_report",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish report %s: %w", report.EventID, err)
	}
	return nil
}
