// Package server exposes the dashboard over HTTP: read-only passthrough
// endpoints for every market list, the session state endpoints driving
// the active view, and a websocket pushing merged whale alerts.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Bakuzaci/zora-dash/internal/dashboard"
	"github.com/Bakuzaci/zora-dash/internal/model"
)

// Gateway is the subset of the remote API client the handlers use.
type Gateway interface {
	Explore(ctx context.Context, listType string, count int) ([]model.Coin, error)
	Topics(ctx context.Context) ([]model.Topic, error)
	Coin(ctx context.Context, address string) (*model.CoinDetail, error)
	CoinSwaps(ctx context.Context, address string, count int) ([]model.Swap, error)
	TraderLeaderboard(ctx context.Context, count int) ([]model.Trader, error)
	FeaturedCreators(ctx context.Context, count int) ([]model.Creator, error)
	Profile(ctx context.Context, identifier string) (*model.Profile, error)
	WhaleTrades(ctx context.Context, minUSD float64) ([]model.WhaleAlert, error)
	Overview(ctx context.Context) (*model.Overview, error)
}

// Notifier publishes a signal whenever the merged alert list may have
// changed. The alerts reconciler implements it.
type Notifier interface {
	Subscribe() (int, <-chan struct{})
	Unsubscribe(id int)
}

// Server serves the dashboard HTTP API.
type Server struct {
	gateway Gateway
	session *dashboard.Session
	alerts  Notifier
	logger  *slog.Logger

	defaultMinUSD float64
}

// New creates a dashboard server. defaultMinUSD is used for /api/whales
// when the request does not carry a min_usd parameter.
func New(gateway Gateway, session *dashboard.Session, alerts Notifier, defaultMinUSD float64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		gateway:       gateway,
		session:       session,
		alerts:        alerts,
		logger:        logger,
		defaultMinUSD: defaultMinUSD,
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/overview", s.handleOverview)
	mux.HandleFunc("GET /api/topics", s.handleTopics)
	mux.HandleFunc("GET /api/explore/{list}", s.handleExplore)
	mux.HandleFunc("GET /api/coins/{address}", s.handleCoin)
	mux.HandleFunc("GET /api/coins/{address}/swaps", s.handleCoinSwaps)
	mux.HandleFunc("GET /api/traders", s.handleTraders)
	mux.HandleFunc("GET /api/creators", s.handleCreators)
	mux.HandleFunc("GET /api/whales", s.handleWhales)
	mux.HandleFunc("GET /api/profile/{identifier}", s.handleProfile)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("PUT /api/state/view/{view}", s.handleSetView)
	mux.HandleFunc("GET /ws/alerts", s.handleAlertsWS)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
}

// Handler returns an http.Handler with CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
