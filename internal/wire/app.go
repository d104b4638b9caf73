package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/gaas-console/internal/adapter/gaasapi"
	"github.com/alanyang/gaas-console/internal/adapter/memory"
	pgdb "github.com/alanyang/gaas-console/internal/adapter/postgres"
	pgeventbus "github.com/alanyang/gaas-console/internal/adapter/postgres/eventbus"
	"github.com/alanyang/gaas-console/internal/config"
	porteventbus "github.com/alanyang/gaas-console/internal/port/eventbus"
	portgraph "github.com/alanyang/gaas-console/internal/port/graph"
	"github.com/alanyang/gaas-console/internal/repository"

	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"

	"github.com/alanyang/gaas-console/internal/transport"
	mcptransport "github.com/alanyang/gaas-console/internal/transport/mcp"
)

// breakerOpenFor is how long the executor rejects calls once the breaker trips.
const breakerOpenFor = 30 * time.Second

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool      *pgxpool.Pool
	Server    *http.Server
	GraphSvc  *graphsvc.Service
	MCPServer *mcptransport.Server

	closers []func()
}

// Close releases the event bus and database pool. Safe on a partially built App.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// NewAPIClient builds the GaaS HTTP executor from config. Shared by the gateway and the CLI.
func NewAPIClient(cfg config.APIConfig, logger *slog.Logger) (*gaasapi.Client, error) {
	opts := []gaasapi.Option{
		gaasapi.WithTimeout(cfg.Timeout),
		gaasapi.WithLogger(logger),
		gaasapi.WithRetry(cfg.Retries),
	}
	if cfg.Token != "" {
		opts = append(opts, gaasapi.WithToken(cfg.Token))
	}
	if cfg.Breaker > 0 {
		opts = append(opts, gaasapi.WithCircuitBreaker(cfg.Breaker, breakerOpenFor))
	}

	client, err := gaasapi.New(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GaaS API client: %w", err)
	}
	return client, nil
}

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	// ── Event bus ────────────────────────────────────────────────────────────
	var eventBus porteventbus.EventBus
	if cfg.Database.URL != "" {
		pool, err := pgdb.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		app.Pool = pool
		app.closers = append(app.closers, pool.Close)

		pgBus := pgeventbus.New(pool)
		app.closers = append(app.closers, pgBus.Close)
		eventBus = pgBus
		slog.Info("event bus: postgres LISTEN/NOTIFY")
	} else {
		eventBus = memory.NewEventBus()
		slog.Info("event bus: in-process")
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	apiClient, err := NewAPIClient(cfg.API, slog.Default())
	if err != nil {
		app.Close()
		return nil, err
	}
	graphRepo := repository.NewGraphs(apiClient)
	var nsRepo portgraph.NamespaceRepository = repository.NewGetAllNamespacesRepo(apiClient)
	if cfg.Gateway.NamespaceTTL > 0 {
		nsRepo = memory.NewNamespaceCache(nsRepo, cfg.Gateway.NamespaceTTL)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	graphSvcInstance := graphsvc.NewService(graphRepo, eventBus)
	nsSvcInstance := namespacesvc.NewService(nsRepo)

	mcpServer := mcptransport.New(graphSvcInstance, nsSvcInstance)

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, graphSvcInstance, nsSvcInstance, mcpServer, eventBus)

	app.Server = &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Gateway.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.GraphSvc = graphSvcInstance
	app.MCPServer = mcpServer

	slog.Info("application wired", "port", cfg.Gateway.Port, "api_url", cfg.API.URL)
	return app, nil
}
