// Package app wires configuration into the use cases shared by the binaries.
package app

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/ligue-leads/internal/config"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/directory"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/emailbison"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/instantly"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type App struct {
	Config     *config.Config
	Toolbox    *usecase.Toolbox
	Aggregator *usecase.StatsAggregator
	Overview   *usecase.MultiOverviewUseCase

	db    *sql.DB
	redis *redis.Client
}

func New(cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	// 1. Directory
	var source entity.DirectorySource
	switch cfg.DirectorySource {
	case config.SourcePostgres:
		db, err := directory.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.db = db
		source = directory.NewPostgresSource(db)
	default:
		source = directory.NewSheetSource(cfg.SheetURL, cfg.SheetTabs, cfg.HTTPTimeout)
	}
	if cfg.RedisAddr != "" && cfg.CacheTTL > 0 {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		source = directory.NewCachedSource(source, a.redis, cfg.CacheTTL)
		log.Printf("🗄️ Directory cache enabled (ttl=%s)", cfg.CacheTTL)
	}
	resolver := usecase.NewClientResolver(source)

	// 2. Platforms
	instantlyClient := instantly.NewClient(cfg.InstantlyBaseURL, cfg.HTTPTimeout)
	platforms := usecase.Platforms{
		entity.PlatformInstantly:  instantlyClient,
		entity.PlatformEmailBison: emailbison.NewClient(cfg.EmailBisonBaseURL, cfg.HTTPTimeout),
	}

	// 3. Use cases
	filter := usecase.NewSenderFilter(cfg.InternalDomains, cfg.InternalKeywords, cfg.SystemSenders)
	a.Aggregator = usecase.NewStatsAggregator(resolver, platforms)
	a.Overview = usecase.NewMultiOverviewUseCase(a.Aggregator, instantlyClient)
	a.Toolbox = &usecase.Toolbox{
		ClientList:    usecase.NewGetClientListUseCase(resolver, instantlyClient),
		LeadResponses: usecase.NewGetLeadResponsesUseCase(resolver, platforms, filter, cfg.LeadMaxPages),
		CampaignStats: usecase.NewGetCampaignStatsUseCase(a.Aggregator),
		WorkspaceInfo: usecase.NewGetWorkspaceInfoUseCase(resolver, instantlyClient),
		Aggregator:    a.Aggregator,
	}
	return a, nil
}

// DB is nil unless the directory lives in Postgres.
func (a *App) DB() *sql.DB { return a.db }

func (a *App) Redis() *redis.Client { return a.redis }

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}
