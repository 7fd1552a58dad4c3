package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const (
	SourceSheet    = "sheet"
	SourcePostgres = "postgres"

	// DefaultInstantlyTab is the gid of the Instantly workspaces tab.
	DefaultInstantlyTab = "928115249"
)

type Config struct {
	Port        string
	CORSOrigins []string

	DirectorySource string
	SheetURL        string
	SheetTabs       map[entity.Platform]string
	DatabaseURL     string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	InstantlyBaseURL  string
	EmailBisonBaseURL string
	HTTPTimeout       time.Duration

	InternalDomains  []string
	InternalKeywords []string
	SystemSenders    []string
	LeadMaxPages     int

	RabbitMQURL      string
	ReportWebhookURL string

	MailHost         string
	MailPort         int
	MailUser         string
	MailPass         string
	MailFrom         string
	ReportRecipients []string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		CORSOrigins: list(getenv("CORS_ORIGINS", "*")),

		DirectorySource: strings.ToLower(getenv("DIRECTORY_SOURCE", SourceSheet)),
		SheetURL:        os.Getenv("SHEET_URL"),
		SheetTabs: map[entity.Platform]string{
			entity.PlatformInstantly:  getenv("SHEET_GID_INSTANTLY", DefaultInstantlyTab),
			entity.PlatformEmailBison: os.Getenv("SHEET_GID_EMAILBISON"),
		},
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		InstantlyBaseURL:  os.Getenv("INSTANTLY_BASE_URL"),
		EmailBisonBaseURL: os.Getenv("EMAILBISON_BASE_URL"),

		InternalDomains:  list(os.Getenv("INTERNAL_DOMAINS")),
		InternalKeywords: list(os.Getenv("INTERNAL_KEYWORDS")),
		SystemSenders:    list(getenv("SYSTEM_SENDERS", "paypal")),

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		ReportWebhookURL: os.Getenv("REPORT_WEBHOOK_URL"),

		MailHost:         os.Getenv("MAIL_HOST"),
		MailUser:         os.Getenv("MAIL_USER"),
		MailPass:         os.Getenv("MAIL_PASS"),
		MailFrom:         getenv("MAIL_FROM", "reports@ligue-leads.local"),
		ReportRecipients: list(os.Getenv("REPORT_RECIPIENTS")),
	}

	var err error
	if cfg.CacheTTL, err = duration("DIRECTORY_CACHE_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = duration("HTTP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.LeadMaxPages, err = integer("LEAD_MAX_PAGES", 50); err != nil {
		return nil, err
	}
	if cfg.MailPort, err = integer("MAIL_PORT", 587); err != nil {
		return nil, err
	}

	switch cfg.DirectorySource {
	case SourceSheet:
		if cfg.SheetURL == "" {
			return nil, fmt.Errorf("SHEET_URL is required when DIRECTORY_SOURCE=sheet")
		}
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DIRECTORY_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("DIRECTORY_SOURCE must be %q or %q, got %q", SourceSheet, SourcePostgres, cfg.DirectorySource)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func list(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a duration like 30s or 5m, got %q", key, v)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
