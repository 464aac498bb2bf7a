package app

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	httpapi "github.com/aussiebroadwan/notedesk/internal/auth/http"
	"github.com/aussiebroadwan/notedesk/internal/auth/service"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
	"github.com/aussiebroadwan/notedesk/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/notedesk/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/notedesk/pkg/cryptox"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
	"github.com/aussiebroadwan/notedesk/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/notedesk/internal/auth/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the session service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.Keys
	registry *prometheus.Registry

	// Services
	sessionService   *service.SessionService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notedesk-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	keys, err := InitAuthKeys(app.cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.keys = keys

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seed(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Handler exposes the fully wired router, mainly for in-process tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunContext(ctx)
}

// RunContext serves until ctx is cancelled or the listener fails, then shuts
// down gracefully.
func (app *Application) RunContext(ctx context.Context) error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion, "driver", app.cfg.DatabaseDriver)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase opens the configured user store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
			app.cfg.DatabaseFile,
		)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:                  app.db,
		Keys:                   app.keys,
		Metrics:                service.NewMetrics(app.registry),
		LoginAccessTTL:         app.cfg.LoginAccessTTL,
		RefreshAccessTTL:       app.cfg.RefreshAccessTTL,
		RefreshTTL:             app.cfg.RefreshTTL,
		CookieMaxAge:           app.cfg.CookieMaxAge,
		RequireActiveOnRefresh: app.cfg.RequireActiveOnRefresh,
	}

	app.bootstrapService = &service.BootstrapService{Store: app.db}
}

// seed creates the first account when bootstrap credentials are configured.
func (app *Application) seed(ctx context.Context) error {
	if app.cfg.BootstrapUsername == "" {
		return nil
	}

	ctx = slogx.WithContext(ctx, app.logger)
	if _, err := app.bootstrapService.Seed(ctx, domain.BootstrapData{
		Username: app.cfg.BootstrapUsername,
		Password: app.cfg.BootstrapPassword,
		Roles:    app.cfg.BootstrapRoles,
	}); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	proxies, err := httpx.ParseTrustedProxies(app.cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.db,
		app.registry,
		app.logger,
	)

	router.SessionService = app.sessionService
	router.MetricsPublic = app.cfg.MetricsPublic
	router.TrustedProxies = proxies
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
