package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/rental-upsell/api/openapi"
	"github.com/donaldgifford/rental-upsell/internal/api/handlers"
	"github.com/donaldgifford/rental-upsell/internal/api/middleware"
	"github.com/donaldgifford/rental-upsell/internal/config"
	"github.com/donaldgifford/rental-upsell/internal/datasource"
	"github.com/donaldgifford/rental-upsell/internal/engine"
	"github.com/donaldgifford/rental-upsell/pkg/extract"
	"github.com/donaldgifford/rental-upsell/pkg/llm"
	"github.com/donaldgifford/rental-upsell/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, slog.String("service", "upsell-engine"))

	comps, err := buildComponents(cfg, log)
	if err != nil {
		return fmt.Errorf("building components: %w", err)
	}
	defer func() {
		if err := comps.Close(); err != nil {
			log.Warn("closing components", "error", err)
		}
	}()

	sched, err := engine.NewScheduler(
		comps.engine,
		cfg.Schedule.HealthInterval,
		cfg.Schedule.CanaryInterval,
		logger.Component(log, "scheduler"),
		engine.WithNotifier(buildNotifier(&cfg.Notify, log)),
		engine.WithAlertSource(cfg.DataSource.Kind),
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(comps.engine, comps.backend, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sched.Start()
	log.Info("starting server", "addr", addr)

	// Start server in a goroutine.
	go func() {
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	<-sched.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, health checks, metrics and
// every API operation registered.
func newServer(eng *engine.Engine, backend llm.Backend, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(logger.Component(log, "http")))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(eng)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("Rental Upsell Engine API", Version))
	registerAPI(api, eng, backend)

	return e
}

// registerAPI registers every huma operation. It is shared with the OpenAPI
// generator so the published document matches the server.
func registerAPI(api huma.API, eng *engine.Engine, backend llm.Backend) {
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationHandler(eng, eng, eng))
	handlers.RegisterScoringRoutes(api, handlers.NewScoringHandler())
	handlers.RegisterPersonaRoutes(api, handlers.NewPersonaHandler(
		extract.NewPersonaGenerator(backend),
		extract.NewCarProfiler(backend),
	))
}

// RegisterAPI registers every operation against a demo engine with LLM
// features disabled. It exists for tools that only need the OpenAPI document.
func RegisterAPI(api huma.API) {
	registerAPI(api, engine.NewEngine(datasource.NewDemoSource()), llm.Noop{})
}
