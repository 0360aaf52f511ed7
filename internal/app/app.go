package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-stats/external/cricbuzz"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/seeddata"
	"github.com/riskibarqy/cricket-stats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

// App holds the wired services shared by the api and ingest binaries.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB

	Stats     *usecase.StatsService
	Console   *usecase.ConsoleService
	Ingestion *usecase.IngestionService
	Seeder    *usecase.SeedService
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newWithDB(cfg, db, logger), nil
}

func newWithDB(cfg config.Config, db *sqlx.DB, logger *logging.Logger) *App {
	var (
		playerRepo    player.Repository    = sqldb.NewPlayerRepository(db)
		matchRepo     match.Repository     = sqldb.NewMatchRepository(db)
		scorecardRepo scorecard.Repository = sqldb.NewScorecardRepository(db, logger)
	)
	if cfg.StatsCacheTTL > 0 {
		store := basecache.NewStore[any](cfg.StatsCacheTTL)
		playerRepo = cache.NewPlayerRepository(playerRepo, store)
		matchRepo = cache.NewMatchRepository(matchRepo, store)
		scorecardRepo = cache.NewScorecardRepository(scorecardRepo, store)
	}
	snapshotRepo := sqldb.NewSnapshotRepository(db)

	provider := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL: cfg.CricbuzzBaseURL,
		APIKey:  cfg.RapidAPIKey,
		Host:    cfg.RapidAPIHost,
		Timeout: cfg.CricbuzzTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.CricbuzzCircuitEnabled,
			FailureThreshold: cfg.CricbuzzCircuitFailures,
			OpenTimeout:      cfg.CricbuzzCircuitOpenTimeout,
		},
	})

	ingestCfg := usecase.DefaultIngestionConfig()
	ingestCfg.PlayerPace = cfg.IngestPlayerPace
	ingestCfg.ScorecardPace = cfg.IngestScorecardPace
	ingestCfg.ScorecardMatches = cfg.IngestScorecardMatches

	return &App{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		Stats:     usecase.NewStatsService(playerRepo, matchRepo, scorecardRepo),
		Console:   usecase.NewConsoleService(sqldb.NewConsoleRepository(db), cfg.ConsoleSchemaCacheTTL),
		Ingestion: usecase.NewIngestionService(provider, playerRepo, matchRepo, scorecardRepo, ingestCfg, logger),
		Seeder:    usecase.NewSeedService(playerRepo, matchRepo, scorecardRepo, snapshotRepo, logger),
	}
}

// EnsureSchema creates any missing tables and drops the console's cached
// table list so new tables are visible straight away.
func (a *App) EnsureSchema(ctx context.Context) ([]string, error) {
	created, err := sqldb.EnsureSchema(ctx, a.db)
	if err != nil {
		return nil, err
	}
	a.Console.ForgetSchema(ctx)
	return created, nil
}

// SeedSample loads the embedded sample dataset into the store.
func (a *App) SeedSample(ctx context.Context) (usecase.SeedReport, error) {
	data, err := seeddata.Load(time.Now())
	if err != nil {
		return usecase.SeedReport{}, fmt.Errorf("load sample data: %w", err)
	}
	return a.Seeder.Seed(ctx, data)
}

func (a *App) NewHTTPServer() (*http.Server, error) {
	handler := httpapi.NewHandler(a.Stats, a.Console, a.Ingestion, a.logger)
	router := httpapi.NewRouter(handler, a.logger, a.cfg.CORSAllowedOrigins, a.cfg.AdminToken)

	server := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       a.cfg.ReadTimeout,
		ReadHeaderTimeout: a.cfg.ReadTimeout,
		WriteTimeout:      a.cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
