package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/varaldossonhos/api/internal/config"
	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/handler"
	"github.com/varaldossonhos/api/internal/mailer"
	"github.com/varaldossonhos/api/internal/middleware"
	"github.com/varaldossonhos/api/internal/repository"
	"github.com/varaldossonhos/api/internal/service"
)

func main() {
	// Local development reads a .env file; absence is fine.
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to the record store
	store := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := store.Connect(ctx); err != nil {
		slog.Error("failed to connect to record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	slog.Info("connected to record store",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Notification side-channel
	mail := mailer.New(mailer.Config{
		Endpoint:     cfg.Mail.Endpoint,
		APIKey:       cfg.Mail.APIKey,
		From:         cfg.Mail.From,
		CopyOperator: cfg.Mail.CopyOperator,
		Timeout:      cfg.Mail.Timeout,
	})
	if cfg.Mail.Endpoint == "" {
		slog.Warn("mail provider not configured; notifications will be simulated")
	}

	// Repositories
	donorRepo := repository.NewDonorRepository(store)
	letterRepo := repository.NewLetterRepository(store)
	pointRepo := repository.NewCollectionPointRepository(store)
	donationRepo := repository.NewDonationRepository(store)
	eventRepo := repository.NewEventRepository(store)

	// Services
	catalogService := service.NewCatalogService(eventRepo, letterRepo, pointRepo)
	donorService := service.NewDonorService(donorRepo, mail)
	adoptionService := service.NewAdoptionService(donationRepo, letterRepo, service.NewLifecycle(), mail)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	donorHandler := handler.NewDonorHandler(donorService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)

	// One canonical route table; the "rota" alias mirrors the path name.
	router := handler.NewRouter([]handler.Route{
		{Method: http.MethodGet, Path: "/health", Handle: handler.Health(store)},
		{Method: http.MethodGet, Path: "/events", Alias: "events", Handle: catalogHandler.Events},
		{Method: http.MethodGet, Path: "/letters", Alias: "letters", Handle: catalogHandler.Letters},
		{Method: http.MethodGet, Path: "/collection-points", Alias: "collection-points", Handle: catalogHandler.CollectionPoints},
		{Method: http.MethodPost, Path: "/register", Alias: "register", Handle: donorHandler.Register},
		{Method: http.MethodPost, Path: "/login", Alias: "login", Handle: donorHandler.Login},
		{Method: http.MethodPost, Path: "/adopt", Alias: "adopt", Handle: adoptionHandler.Adopt},
		{Method: http.MethodPost, Path: "/update-status", Alias: "update-status", Handle: adoptionHandler.UpdateStatus},
	})

	// Apply global middleware. CORS sits outermost so preflights short-circuit
	// before routing and every response carries the fixed header set.
	wrapped := middleware.Chain(
		router,
		middleware.CORS,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
