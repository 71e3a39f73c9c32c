// Lectern backend server — curriculum CRUD, AI assistant relay, and the
// realtime collaboration hub.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lecternhq/lectern/pkg/api"
	"github.com/lecternhq/lectern/pkg/assist"
	"github.com/lecternhq/lectern/pkg/auth"
	"github.com/lecternhq/lectern/pkg/config"
	"github.com/lecternhq/lectern/pkg/database"
	"github.com/lecternhq/lectern/pkg/events"
	"github.com/lecternhq/lectern/pkg/llm"
	"github.com/lecternhq/lectern/pkg/services"
	"github.com/lecternhq/lectern/pkg/version"
)

const hubWriteTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting lectern", "version", version.Full(), "addr", cfg.Addr())

	ctx := context.Background()

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	curriculumService := services.NewCurriculumService(dbClient.Client)
	chatHistoryService := services.NewChatHistoryService(dbClient.Client)

	llmClient := llm.NewClient(llm.Config{
		APIKey:    cfg.AnthropicAPIKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	}, logger)
	assistService := assist.NewService(llmClient, logger)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	hub := events.NewHub(verifier, hubWriteTimeout, logger)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 4. HTTP server
	server := api.NewServer(&cfg, dbClient, curriculumService, chatHistoryService,
		assistService, hub, verifier, logger)
	server.SetWarningsService(warningsService)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 5. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 6. Graceful shutdown: stop accepting requests, then drop WebSocket
	// sessions (they hold requests open and would block Shutdown otherwise).
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	hub.Shutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
