package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/api"
	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/config"
	"github.com/walkingguide-web/internal/database"
	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/notification"
	"github.com/walkingguide-web/internal/realtime"
	"github.com/walkingguide-web/internal/repository"
	"github.com/walkingguide-web/internal/service"
	"github.com/walkingguide-web/internal/session"
	"github.com/walkingguide-web/internal/ui"
	"github.com/walkingguide-web/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info", "json")
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("api", cfg.API.BaseURL).Msg("Starting Walking Guide web server...")

	// Session store
	repos, db := openStore(cfg, log)
	if db != nil {
		defer db.Close()
	}

	// Backend client and per-session UI state
	client := apiclient.New(apiclient.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, log)
	registry := ui.NewRegistry(client, notification.ParsePolicy(cfg.Notifications.Reconcile), log)
	hub := realtime.NewHub(log)
	registry.OnBump(hub.Broadcast)

	lang, ok := i18n.Parse(cfg.UI.DefaultLanguage)
	if !ok {
		lang = i18n.Vietnamese
	}
	sessions := session.NewManager(repos.Session, session.Options{
		CookieName:      cfg.Session.CookieName,
		TTL:             cfg.Session.TTL,
		SecureCookie:    cfg.Session.SecureCookie,
		DefaultLanguage: lang,
	}, log)
	sessions.OnEnd(registry.Drop)

	// Initialize services
	services := service.NewServices(repos, client, registry, cfg, log)

	// Start session janitor
	go services.Janitor.Start(context.Background())
	log.Info().Msg("Session janitor started")

	deps := api.Deps{
		API:      client,
		Services: services,
		Sessions: sessions,
		UI:       registry,
		Hub:      hub,
		Config:   cfg,
	}
	if db != nil {
		deps.DB = db
	}

	// Initialize router
	router := api.NewRouter(deps, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop background work and close push connections
	services.Janitor.Stop()
	hub.Close()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

// openStore returns the configured session repositories. The database is nil
// for the memory store.
func openStore(cfg *config.Config, log zerolog.Logger) (*repository.Repositories, *database.DB) {
	if cfg.Session.Store != "postgres" {
		log.Info().Msg("Using in-memory session store")
		return repository.NewInMemory(), nil
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := db.RunMigrations(cfg.Session.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	return repository.New(db), db
}
