package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Bakuzaci/zora-dash/internal/dashboard"
)

const (
	wsWriteTimeout = 5 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is read-only and served cross-origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// alertsPayload is one websocket frame: the merged display list plus the
// live indicator, re-derived on every send.
type alertsPayload struct {
	Alerts []dashboard.AlertRow `json:"alerts"`
	Live   bool                 `json:"live"`
}

func (s *Server) currentAlerts() alertsPayload {
	vs := s.session.Snapshot()
	return alertsPayload{
		Alerts: dashboard.FormatAlerts(vs.Alerts),
		Live:   vs.Live,
	}
}

// handleAlertsWS streams the merged whale alert list. A frame is pushed
// whenever the reconciler signals a change, so every connected client
// renders the same list the session state endpoint reports.
func (s *Server) handleAlertsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	id, changes := s.alerts.Subscribe()
	defer s.alerts.Unsubscribe(id)

	s.logger.Debug("alerts websocket connected", "remote", r.RemoteAddr)

	// Drain the client side so close frames are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(v any) error {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		return conn.WriteJSON(v)
	}

	if err := write(s.currentAlerts()); err != nil {
		return
	}

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-changes:
			if err := write(s.currentAlerts()); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
