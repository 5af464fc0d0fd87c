// Package dashboard projects the data layer into what the presentation
// layer renders: the per-view fetch state, the merged whale alert list,
// and compact display strings for raw values.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Bakuzaci/zora-dash/internal/alerts"
	"github.com/Bakuzaci/zora-dash/internal/fetch"
	"github.com/Bakuzaci/zora-dash/internal/model"
	"github.com/Bakuzaci/zora-dash/internal/view"
)

// ViewState is the pure projection handed to renderers. It is re-derived
// from the fetch state and alert buffer on every call; no merged state is
// stored anywhere between renders.
type ViewState struct {
	View   view.View          `json:"view"`
	Status fetch.Status       `json:"status"`
	Data   any                `json:"data,omitempty"`
	Error  string             `json:"error,omitempty"`
	Alerts []model.WhaleAlert `json:"alerts,omitempty"`
	Live   bool               `json:"live"`
}

// Session holds the active view and drives the fetch controller and the
// alert reconciler through view transitions.
type Session struct {
	ctrl   *fetch.Controller
	rec    *alerts.Reconciler
	logger *slog.Logger

	mu     sync.Mutex
	active view.View
}

// NewSession creates a session with no active view. The first SetView
// selects the initial view and issues its fetch.
func NewSession(ctrl *fetch.Controller, rec *alerts.Reconciler, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ctrl:   ctrl,
		rec:    rec,
		logger: logger,
	}
}

// SetView makes v the active view. Exactly one fetch is issued per
// transition; entering or leaving the whales view opens or closes the
// live alert session.
func (s *Session) SetView(ctx context.Context, v view.View) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view %q", v)
	}

	s.mu.Lock()
	prev := s.active
	s.active = v
	s.mu.Unlock()

	s.logger.Info("view change", "from", prev, "to", v)

	if prev == view.Whales && v != view.Whales {
		s.rec.Leave()
	}

	s.ctrl.SetView(ctx, v)

	if v == view.Whales && prev != view.Whales {
		s.rec.Enter(ctx)
	}

	return nil
}

// ActiveView returns the currently selected view.
func (s *Session) ActiveView() view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Snapshot derives the current ViewState. For the whales view the data is
// the merged live+snapshot alert list; for every other view it is the
// fetched payload as-is.
func (s *Session) Snapshot() ViewState {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	fs := s.ctrl.State()
	vs := ViewState{
		View:   active,
		Status: fs.Status,
		Error:  fs.Err,
	}

	if active != view.Whales {
		vs.Data = fs.Payload
		return vs
	}

	snapshot, _ := fs.Payload.([]model.WhaleAlert)
	vs.Alerts = s.rec.Merged(snapshot)
	vs.Live = s.rec.Live()
	return vs
}

// Close ends any live alert session.
func (s *Session) Close() {
	s.rec.Leave()
}

// AlertRow is a display-ready whale alert.
type AlertRow struct {
	TxHash  string `json:"tx_hash"`
	Symbol  string `json:"symbol,omitempty"`
	Name    string `json:"name,omitempty"`
	Amount  string `json:"amount"`
	Side    string `json:"side"`
	TimeAgo string `json:"time_ago"`
}

// FormatAlert renders one whale alert for display.
func FormatAlert(a model.WhaleAlert) AlertRow {
	var ts time.Time
	if a.Timestamp > 0 {
		ts = time.Unix(a.Timestamp, 0)
	}
	return AlertRow{
		TxHash:  a.TxHash,
		Symbol:  a.CoinSymbol,
		Name:    a.CoinName,
		Amount:  FormatCurrency(&a.AmountUSD),
		Side:    a.Direction,
		TimeAgo: FormatRelativeTime(ts),
	}
}

// FormatAlerts renders a merged alert list for display.
func FormatAlerts(list []model.WhaleAlert) []AlertRow {
	rows := make([]AlertRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, FormatAlert(a))
	}
	return rows
}
