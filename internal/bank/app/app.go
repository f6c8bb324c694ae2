package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/seeka/internal/bank/http"
	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/internal/bank/store/drivers/memory"
	"github.com/aussiebroadwan/seeka/internal/bank/store/drivers/sqlite"
	"github.com/aussiebroadwan/seeka/pkg/genx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the bank service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	generator genx.Generator

	// Services
	gate            *service.Gate
	auditService    *service.AuditService
	userService     *service.UserService
	sessionService  *service.SessionService
	consentService  *service.ConsentService
	mirrorService   *service.MirrorService
	decisionService *service.DecisionService
	fairnessService *service.FairnessService
	advisorService  *service.AdvisorService
	seedService     *service.SeedService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "seeka-bank",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initGenerator(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if cfg.Seed {
		ctx := slogx.WithContext(context.Background(), app.logger)
		if err := app.seedService.Run(ctx); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("bank service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bank service...")

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

	// Close the record store
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("bank service stopped")
	return nil
}

// Handler exposes the wired router for in-process tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initStore initializes the record store for the configured driver.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "memory":
		app.db = memory.NewStore()
	case "sqlite":
		db, err := sqlite.NewStore(app.cfg.DatabaseFile)
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		app.db = db
	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	return nil
}

// initGenerator initializes the text-generation collaborator. With no API
// key configured the AI endpoints stay up and report structured failures.
func (app *Application) initGenerator() error {
	if app.cfg.GeminiAPIKey == "" {
		app.logger.Warn("GEMINI_API_KEY not set, AI endpoints will report failures")
		app.generator = genx.Unavailable{}
		return nil
	}

	gemini, err := genx.NewGemini(context.Background(), app.cfg.GeminiAPIKey, app.cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	app.generator = gemini

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.gate = &service.Gate{}

	app.auditService = &service.AuditService{Store: app.db, Gate: app.gate}
	app.userService = &service.UserService{Store: app.db, Audit: app.auditService, Gate: app.gate}
	app.sessionService = &service.SessionService{
		Store: app.db,
		Users: app.userService,
		Audit: app.auditService,
		Gate:  app.gate,
	}

	// Audit attribution follows the session identity. Wired after both
	// services exist; a nil actor falls back to the system actor.
	app.auditService.Actor = app.sessionService.Current

	app.consentService = &service.ConsentService{Store: app.db, Audit: app.auditService, Gate: app.gate}
	app.mirrorService = &service.MirrorService{Store: app.db, Audit: app.auditService, Gate: app.gate}
	app.decisionService = &service.DecisionService{Store: app.db, Audit: app.auditService, Gate: app.gate}
	app.fairnessService = &service.FairnessService{Store: app.db, Audit: app.auditService, Gate: app.gate}
	app.advisorService = &service.AdvisorService{
		Generator: app.generator,
		Mirrors:   app.mirrorService,
	}
	app.seedService = &service.SeedService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.ConsentService = app.consentService
	router.MirrorService = app.mirrorService
	router.DecisionService = app.decisionService
	router.AuditService = app.auditService
	router.FairnessService = app.fairnessService
	router.AdvisorService = app.advisorService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
