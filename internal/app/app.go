package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/squaredcircle/ringside/external/slamstats"
	"github.com/squaredcircle/ringside/internal/config"
	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/reign"
	"github.com/squaredcircle/ringside/internal/infrastructure/repository/memory"
	"github.com/squaredcircle/ringside/internal/infrastructure/repository/postgres"
	"github.com/squaredcircle/ringside/internal/platform/cache"
	"github.com/squaredcircle/ringside/internal/platform/logging"
	"github.com/squaredcircle/ringside/internal/platform/resilience"
	"github.com/squaredcircle/ringside/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

// App bundles the wired services behind whichever repositories the caller
// selected. Scoring itself never touches I/O; the repositories are the only
// boundary.
type App struct {
	Events event.Repository
	Reigns reign.Repository

	Scorer     *usecase.ScoreService
	Aggregator *usecase.AggregateService
	Titles     *usecase.TitleService
	Rescorer   *usecase.RescoreService

	Feed *slamstats.Client

	db *sqlx.DB
}

// New wires the app against Postgres repositories.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	a := build(cfg, logger, postgres.NewEventRepository(db), postgres.NewReignRepository(db))
	a.db = db
	return a, nil
}

// NewInMemory wires the app against in-memory repositories, for file-fed runs
// and tests.
func NewInMemory(cfg config.Config, logger *logging.Logger, events []event.Event, reigns []reign.Reign) *App {
	return build(cfg, logger, memory.NewEventRepository(events), memory.NewReignRepository(reigns))
}

func build(cfg config.Config, logger *logging.Logger, events event.Repository, reigns reign.Repository) *App {
	if logger == nil {
		logger = logging.Default()
	}

	ttl := cfg.CacheTTL
	if !cfg.CacheEnabled {
		ttl = 0
	}
	store := cache.NewStore(ttl)

	calc := usecase.NewCalculator(logger)
	scorer := usecase.NewScoreService(calc, store, logger)
	aggregator := usecase.NewAggregateService(scorer, logger)
	titles := usecase.NewTitleService(logger)
	rescorer := usecase.NewRescoreService(aggregator, cfg.RescoreMaxWorkers, logger)

	var feed *slamstats.Client
	if cfg.SlamStatsEnabled {
		feed = slamstats.NewClient(slamstats.ClientConfig{
			BaseURL:    cfg.SlamStatsBaseURL,
			Token:      cfg.SlamStatsToken,
			Timeout:    cfg.SlamStatsTimeout,
			MaxRetries: cfg.SlamStatsMaxRetries,
			PageSize:   cfg.SlamStatsPageSize,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SlamStatsCircuitEnabled,
				FailureThreshold: cfg.SlamStatsCircuitFailureCount,
				OpenTimeout:      cfg.SlamStatsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SlamStatsCircuitHalfOpenMaxReq,
			},
		})
	}

	return &App{
		Events:     events,
		Reigns:     reigns,
		Scorer:     scorer,
		Aggregator: aggregator,
		Titles:     titles,
		Rescorer:   rescorer,
		Feed:       feed,
	}
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
