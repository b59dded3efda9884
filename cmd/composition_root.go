package cmd

import (
	"log/slog"
	"net/http"

	httpin "burger/internal/adapters/in/http"
	"burger/internal/adapters/out/auth"
	"burger/internal/adapters/out/burgerapi"
	"burger/internal/adapters/out/metrics"
	"burger/internal/adapters/out/postgres"
	"burger/internal/core/application/session"
	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	burgerAPI  *burgerapi.Client
	authGate   *auth.Gate
	metrics    *metrics.Metrics
	sessions   *session.Registry
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gateOpts := make([]auth.Option, 0, 1)
	if configs.JWTSecret != "" {
		gateOpts = append(gateOpts, auth.WithSecret(configs.JWTSecret))
	}

	c := &CompositionRoot{
		configs:    configs,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		burgerAPI: burgerapi.New(burgerapi.Config{
			BaseURL: configs.BurgerAPIURL,
			Timeout: configs.BurgerAPITimeout,
			Token:   auth.TokenFromContext,
		}),
		authGate: auth.NewGate(logger, gateOpts...),
		metrics:  metrics.New(reg),
	}
	c.sessions = session.NewRegistry(c.newSession, session.WithMaxSessions(configs.SessionMax))
	return c
}

func (c *CompositionRoot) newSession() *session.Session {
	return session.New(c.burgerAPI, c.authGate,
		session.WithDismissDelay(c.configs.OrderErrorDismissAfter),
		session.WithLogger(c.logger),
		session.WithObserver(c.metrics),
	)
}

func (c *CompositionRoot) CreateRefreshCatalogCommandHandler() *commands.RefreshCatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRefreshCatalogCommandHandler(f, c.burgerAPI)
	return &handler
}

func (c *CompositionRoot) CreateGetIngredientsQueryHandler() queries.GetIngredientsQueryHandler {
	return queries.NewGetIngredientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCatalogRefreshJob(
			c.CreateRefreshCatalogCommandHandler(),
			c.metrics,
			c.configs.CatalogRefreshSchedule,
			c.logger,
		),
		jobs.NewSessionEvictionJob(
			c.sessions,
			c.metrics,
			c.configs.SessionIdleTimeout,
			c.configs.SessionEvictionSchedule,
			c.logger,
		),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGetIngredientsQueryHandler(),
		c.uowFactory.Create().PartRepository(),
		c.sessions,
		c.MetricsHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

// Sessions returns the registry shared by every HTTP request.
func (c *CompositionRoot) Sessions() *session.Registry {
	return c.sessions
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
