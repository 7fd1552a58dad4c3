package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-leads/internal/app"
	"github.com/xavierca1/ligue-leads/internal/config"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/notify"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	// 1. Use cases
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("❌ Startup: %v", err)
	}
	defer a.Close()

	// 2. Report notifiers (all optional)
	webhooks := notify.NewWebhookClient(15 * time.Second)
	var notifiers []usecase.ReportNotifier
	var rabbitConn *amqp091.Connection

	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, reports won't be published: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			notifiers = append(notifiers, queue.NewReportProducer(rabbitMQ.Ch))
		}
	}
	if cfg.ReportWebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(webhooks, cfg.ReportWebhookURL))
	}
	if cfg.MailHost != "" && len(cfg.ReportRecipients) > 0 {
		notifiers = append(notifiers, mail.NewDigestSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.ReportRecipients,
		))
	}

	var reports handlers.ReportUseCase
	if len(notifiers) > 0 {
		reports = usecase.NewSendHealthReportUseCase(a.Overview, notifiers...)
	}

	// 3. Handlers
	toolHandler := handlers.NewToolHandler(a.Toolbox)
	overviewHandler := handlers.NewOverviewHandler(a.Overview, reports)
	webhookHandler := handlers.NewWebhookHandler(webhooks)
	healthHandler := handlers.NewHealthHandler(a.DB(), a.Redis(), rabbitConn, cfg.SheetURL)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/tools", toolHandler.List)
	r.Post("/tools/{name}", toolHandler.Call)

	r.Get("/multi-overview", overviewHandler.MultiOverview)
	r.Post("/reports/health", overviewHandler.HealthReport)
	r.Post("/send-webhook", webhookHandler.Handle)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("🔥 ligue-leads API listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
