package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Bakuzaci/zora-dash/internal/alerts"
	"github.com/Bakuzaci/zora-dash/internal/api"
	"github.com/Bakuzaci/zora-dash/internal/config"
	"github.com/Bakuzaci/zora-dash/internal/connection"
	"github.com/Bakuzaci/zora-dash/internal/dashboard"
	"github.com/Bakuzaci/zora-dash/internal/fetch"
	"github.com/Bakuzaci/zora-dash/internal/server"
	"github.com/Bakuzaci/zora-dash/internal/version"
	"github.com/Bakuzaci/zora-dash/internal/view"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty for defaults)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting zora-dash",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Re-create the logger at the configured level
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"listen", cfg.Server.Listen,
		"api_url", cfg.Zora.BaseURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create the remote API client
	apiClient := api.NewClient(
		cfg.Zora.BaseURL,
		api.WithTimeout(cfg.Zora.Timeout),
		api.WithLogger(logger),
	)

	// Resolve the alert stream endpoint
	streamURL := cfg.Stream.URL
	if streamURL == "" {
		streamURL, err = connection.StreamURL(cfg.Zora.BaseURL)
		if err != nil {
			logger.Error("failed to derive stream url", "error", err)
			os.Exit(1)
		}
	}

	streamCfg := connection.ClientConfig{
		URL:          streamURL,
		PingTimeout:  cfg.Stream.PingTimeout,
		WriteTimeout: cfg.Stream.WriteTimeout,
		BufferSize:   cfg.Stream.BufferSize,
	}

	// A fresh stream client per whales entry; a closed client is not reused.
	dialer := func() alerts.Stream {
		return connection.NewClient(streamCfg, logger)
	}

	// Assemble the session
	controller := fetch.NewController(apiClient, logger)
	reconciler := alerts.NewReconciler(dialer, logger,
		alerts.WithCaps(cfg.Alerts.BufferCap, cfg.Alerts.DisplayCap))
	session := dashboard.NewSession(controller, reconciler, logger)
	defer session.Close()

	if err := session.SetView(ctx, view.Overview); err != nil {
		logger.Error("failed to select initial view", "error", err)
		os.Exit(1)
	}

	srv := server.New(apiClient, session, reconciler, cfg.Alerts.MinUSD, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("starting http server", "addr", cfg.Server.Listen)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("zora-dash running",
		"listen", cfg.Server.Listen,
		"stream_url", streamURL,
	)

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)

	logger.Info("zora-dash stopped")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
