// streamtest connects to the whale alert stream and prints parsed events
// to the console. Useful for checking the pushed event feed without
// running the full dashboard.
//
// Usage: go run ./cmd/streamtest --url wss://api-sdk.zora.engineering/ws/whales
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bakuzaci/zora-dash/internal/alerts"
	"github.com/Bakuzaci/zora-dash/internal/connection"
	"github.com/Bakuzaci/zora-dash/internal/dashboard"
)

func main() {
	baseURL := flag.String("base-url", "https://api-sdk.zora.engineering", "API base URL to derive the stream endpoint from")
	streamURL := flag.String("url", "", "explicit stream URL (overrides -base-url)")
	verbose := flag.Bool("verbose", false, "print full event JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	url := *streamURL
	if url == "" {
		var err error
		url, err = connection.StreamURL(*baseURL)
		if err != nil {
			logger.Error("failed to derive stream url", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	cfg := connection.DefaultClientConfig()
	cfg.URL = url
	client := connection.NewClient(cfg, logger)

	logger.Info("connecting", "url", url)
	if err := client.Connect(ctx); err != nil {
		logger.Error("connect failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	logger.Info("streaming started - press Ctrl+C to stop")

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown complete")
			return

		case err := <-client.Errors():
			logger.Error("stream error", "error", err)
			return

		case msg := <-client.Messages():
			if *verbose {
				var pretty json.RawMessage = msg.Data
				data, _ := json.MarshalIndent(pretty, "", "  ")
				fmt.Printf("[EVENT] %s\n", data)
				continue
			}

			alert, err := alerts.ParseEvent(msg.Data)
			if err != nil {
				logger.Warn("unparseable event", "error", err)
				continue
			}
			row := dashboard.FormatAlert(alert)
			fmt.Printf("[WHALE] %s %s %s %s tx=%s\n",
				row.Side, row.Amount, row.Symbol, row.TimeAgo, row.TxHash)
		}
	}
}
