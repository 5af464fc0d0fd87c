package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Bakuzaci/zora-dash/internal/api"
	"github.com/Bakuzaci/zora-dash/internal/fetch"
	"github.com/Bakuzaci/zora-dash/internal/view"
)

const (
	minCount = 1
	maxCount = 100
)

// parseCount extracts the "count" query param, clamped to [1, 100].
func parseCount(r *http.Request, def int) int {
	s := r.URL.Query().Get("count")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < minCount {
		return minCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

// exploreLists maps URL list names to remote explore list types.
var exploreLists = map[string]string{
	"gainers":  api.ListTopGainers,
	"volume":   api.ListTopVolume24h,
	"valuable": api.ListMostValuable,
	"new":      api.ListNew,
	"active":   api.ListLastTraded,
}

// upstreamError logs the raw cause and answers with the generic message.
// Raw remote errors never reach the response body.
func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}
	s.logger.Error("upstream request failed", "path", r.URL.Path, "error", err)
	writeError(w, status, fetch.UserErrorMessage)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.gateway.Overview(r.Context())
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, ov)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.gateway.Topics(r.Context())
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, topics)
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	list := r.PathValue("list")
	listType, ok := exploreLists[list]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown list "+list)
		return
	}

	count := parseCount(r, view.DefaultCoinCount)
	coins, err := s.gateway.Explore(r.Context(), listType, count)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, coins)
}

func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	coin, err := s.gateway.Coin(r.Context(), address)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, coin)
}

func (s *Server) handleCoinSwaps(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	count := parseCount(r, view.DefaultCoinCount)
	swaps, err := s.gateway.CoinSwaps(r.Context(), address, count)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, swaps)
}

func (s *Server) handleTraders(w http.ResponseWriter, r *http.Request) {
	count := parseCount(r, view.DefaultTraderCount)
	traders, err := s.gateway.TraderLeaderboard(r.Context(), count)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, traders)
}

func (s *Server) handleCreators(w http.ResponseWriter, r *http.Request) {
	count := parseCount(r, view.DefaultCreatorCount)
	creators, err := s.gateway.FeaturedCreators(r.Context(), count)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, creators)
}

func (s *Server) handleWhales(w http.ResponseWriter, r *http.Request) {
	minUSD := s.defaultMinUSD
	if raw := r.URL.Query().Get("min_usd"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "min_usd must be a non-negative number")
			return
		}
		minUSD = v
	}

	alerts, err := s.gateway.WhaleTrades(r.Context(), minUSD)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, alerts)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")
	profile, err := s.gateway.Profile(r.Context(), identifier)
	if err != nil {
		s.upstreamError(w, r, err)
		return
	}
	writeJSON(w, profile)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.session.Snapshot())
}

func (s *Server) handleSetView(w http.ResponseWriter, r *http.Request) {
	v, ok := view.Parse(r.PathValue("view"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown view "+r.PathValue("view"))
		return
	}

	// SetView issues the fetch in the background; the controller carries
	// its own lifetime, not this request's.
	if err := s.session.SetView(context.Background(), v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, s.session.Snapshot())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
