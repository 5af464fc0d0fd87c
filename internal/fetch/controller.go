// Package fetch owns the snapshot fetch lifecycle for the active view.
//
// Exactly one FetchState is live at a time. Every view change issues a
// fresh fetch tagged with a request id; when a fetch resolves, its tag is
// compared against the controller's current tag and stale resolutions are
// discarded. There is no transport-level cancellation: superseded requests
// are idempotent reads and are simply ignored.
package fetch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Bakuzaci/zora-dash/internal/view"
)

// Status is the lifecycle phase of the current fetch.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// UserErrorMessage is the only error text surfaced to the presentation
// layer. The underlying cause is logged, never displayed.
const UserErrorMessage = "failed to load data, please try again"

// Gateway is the remote data source for view snapshots.
type Gateway interface {
	FetchQuery(ctx context.Context, q view.Query) (any, error)
}

// State is the authoritative fetch state for the active view. It is
// replaced wholesale on every transition, never partially mutated.
type State struct {
	View    view.View
	Status  Status
	Payload any
	Err     string
}

// Controller orchestrates fetch-on-view-change. All mutation happens on
// the controller's own goroutines; callers only read via State().
type Controller struct {
	gateway Gateway
	logger  *slog.Logger

	mu      sync.Mutex
	state   State
	current uuid.UUID // tag of the most recently issued fetch
}

// NewController creates a controller in the idle state.
func NewController(gateway Gateway, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		gateway: gateway,
		logger:  logger,
		state:   State{Status: StatusIdle},
	}
}

// SetView issues a fetch for v's default query. It returns immediately;
// progress is observed via State().
func (c *Controller) SetView(ctx context.Context, v view.View) {
	c.SetQuery(ctx, v.Query())
}

// SetQuery issues a fetch for an explicit query. Any in-flight fetch is
// superseded: its eventual resolution will not be committed.
func (c *Controller) SetQuery(ctx context.Context, q view.Query) {
	id := uuid.New()

	c.mu.Lock()
	c.current = id
	c.state = State{View: q.View, Status: StatusLoading}
	c.mu.Unlock()

	c.logger.Debug("fetch issued", "view", q.View, "request_id", id)

	go c.fetch(ctx, id, q)
}

// State returns a copy of the current fetch state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// fetch runs one request to completion and commits the result if the
// request is still current.
func (c *Controller) fetch(ctx context.Context, id uuid.UUID, q view.Query) {
	payload, err := c.gateway.FetchQuery(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != id {
		c.logger.Debug("discarding stale fetch result",
			"view", q.View,
			"request_id", id,
		)
		return
	}

	if err != nil {
		c.logger.Warn("fetch failed", "view", q.View, "error", err)
		c.state = State{View: q.View, Status: StatusError, Err: UserErrorMessage}
		return
	}

	c.state = State{View: q.View, Status: StatusSuccess, Payload: payload}
}
