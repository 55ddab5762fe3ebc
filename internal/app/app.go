package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/cricket-insights/internal/config"
	"github.com/riskibarqy/cricket-insights/internal/domain/player"
	"github.com/riskibarqy/cricket-insights/internal/domain/playerstats"
	"github.com/riskibarqy/cricket-insights/internal/domain/snapshot"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/snapshotstore"
	"github.com/riskibarqy/cricket-insights/internal/infrastructure/source"
	"github.com/riskibarqy/cricket-insights/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricket-insights/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-insights/internal/platform/id"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

// API is the query server over the published snapshot.
type API struct {
	Server *http.Server

	store   *snapshotstore.Store
	catalog *memory.Catalog
	cache   *basecache.Store
	warmup  *usecase.WarmupService
	logger  *logging.Logger
}

func NewAPI(ctx context.Context, cfg config.Config, logger *logging.Logger) (*API, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store := snapshotstore.NewStore(cfg.DataDir, logger)
	snap, _, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	catalog := memory.NewCatalog(snap)

	var playerRepo player.Repository = memory.NewPlayerRepository(catalog)
	var statRepo playerstats.Repository = memory.NewStatRepository(catalog)

	api := &API{store: store, catalog: catalog, logger: logger}
	if cfg.CacheEnabled {
		api.cache = basecache.NewStore(cfg.CacheTTL)
		playerRepo = cache.NewPlayerRepository(playerRepo, api.cache)
		statRepo = cache.NewStatRepository(statRepo, api.cache)
		api.warmup = usecase.NewWarmupService(playerRepo, statRepo, cfg.CacheWarmupWorkers, logger)
	}

	health := usecase.NewHealthService(playerRepo, statRepo, catalog)
	if api.cache != nil {
		health.WithCache(api.cache)
	}

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(playerRepo, statRepo),
		usecase.NewLeaderboardService(statRepo),
		usecase.NewAnalyticsService(statRepo),
		usecase.NewDashboardService(playerRepo, statRepo),
		health,
		logger,
	)

	opts := httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.RateLimitEnabled {
		opts.RateLimitRequests = cfg.RateLimitRequests
		opts.RateLimitWindow = cfg.RateLimitWindow
		opts.TrustProxyHeaders = cfg.RateLimitTrustProxy
	}

	api.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("snapshot loaded",
		"run_id", snap.Manifest.RunID,
		"players", len(snap.Players),
		"stats", len(snap.Stats),
	)
	return api, nil
}

// Warm preloads the cached read paths. It is a no-op when caching is off.
func (a *API) Warm(ctx context.Context) error {
	if a.warmup == nil {
		return nil
	}
	_, err := a.warmup.Warm(ctx)
	return err
}

// Reload swaps in the snapshot currently on disk and drops cached reads of the
// previous one.
func (a *API) Reload(ctx context.Context) error {
	snap, found, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload snapshot: %w", err)
	}
	if !found {
		a.logger.WarnContext(ctx, "snapshot reload skipped, nothing published", "dir", a.store.Dir())
		return nil
	}

	a.catalog.Replace(snap)
	if a.cache != nil {
		a.cache.DeletePrefix(ctx, cache.PlayerKeyPrefix)
		a.cache.DeletePrefix(ctx, cache.StatKeyPrefix)
	}
	a.logger.InfoContext(ctx, "snapshot reloaded",
		"run_id", snap.Manifest.RunID,
		"players", len(snap.Players),
		"stats", len(snap.Stats),
	)
	return a.Warm(ctx)
}

// NewIngestion wires the merge pipeline: CSV sources in, snapshot files out.
func NewIngestion(cfg config.Config, logger *logging.Logger) (*usecase.IngestionService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	manifest, err := source.LoadManifest(cfg.SourceManifest)
	if err != nil {
		return nil, fmt.Errorf("load source manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("validate source manifest: %w", err)
	}

	return usecase.NewIngestionService(
		source.NewCSVLoader(cfg.SourceDir, manifest, cfg.ETLLoadWorkers, logger),
		snapshotstore.NewStore(cfg.DataDir, logger),
		func() snapshot.Builder { return memory.NewRegistry() },
		idgen.NewUUIDGenerator(),
		logger,
	), nil
}
