package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpilot/internal/adapter/googleads"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/db"
)

// main is the entry point of the adpilot service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// Google Ads gateway and the campaign service, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	repo := postgres.NewCampaignRepository(pool)
	gateway := googleads.NewGateway(googleads.Config{
		BaseURL:           cfg.GoogleAds.Endpoint.String(),
		APIVersion:        cfg.GoogleAds.APIVersion,
		DeveloperToken:    cfg.GoogleAds.DeveloperToken,
		LoginCustomerID:   cfg.GoogleAds.LoginCustomerID,
		HTTPClient:        googleads.OAuthHTTPClient(ctx, cfg.GoogleAds.ClientID, cfg.GoogleAds.ClientSecret, cfg.GoogleAds.RefreshToken),
		AssetFetchTimeout: cfg.Assets.FetchTimeout,
	})
	svc := usecase.NewCampaignUseCase(repo, gateway)

	handler := httpadapter.NewHandler(svc, logger, cfg.GoogleAds.CustomerID)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The signal context is already canceled at this point; give the server
	// its own deadline to drain in-flight requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
