// Package alerts reconciles the pushed whale-trade stream with the fetched
// whale snapshot into one bounded, ordered, de-duplicated list.
//
// The reconciler is a small state machine driven by the active view: it is
// entered only while the whales view is active, and exiting the view closes
// the connection and clears the buffer unconditionally. A fresh entry
// always starts from an empty buffer; the next snapshot fetch repopulates
// the cold tail.
package alerts

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Bakuzaci/zora-dash/internal/connection"
	"github.com/Bakuzaci/zora-dash/internal/model"
)

// StreamState is the lifecycle state of the live connection.
type StreamState string

const (
	StateInactive        StreamState = "inactive"
	StateConnecting      StreamState = "connecting"
	StateActive          StreamState = "active"
	StateClosedWithError StreamState = "closed-with-error"
)

// Buffer limits. The push buffer holds the most recent live events; the
// display cap bounds the merged list handed to the presentation layer.
const (
	BufferCap  = 20
	DisplayCap = 50
)

// Stream is the subset of the connection client the reconciler drives.
type Stream interface {
	Connect(ctx context.Context) error
	Close() error
	Messages() <-chan connection.TimestampedMessage
	Errors() <-chan error
}

// Dialer creates a fresh stream for each entry into the whales view.
// Connections are single-use: once closed they are never reused.
type Dialer func() Stream

// Reconciler owns the live alert buffer. All mutation happens in response
// to its own events; other components only read the merged projection.
type Reconciler struct {
	dial       Dialer
	logger     *slog.Logger
	bufferCap  int
	displayCap int

	mu     sync.Mutex
	state  StreamState
	buffer []model.WhaleAlert // newest-first, len <= bufferCap
	live   bool               // true once a pushed event has been merged
	stream Stream
	done   chan struct{} // closed when the session ends
	gen    uint64        // session generation, bumped on every Leave

	subsMu  sync.Mutex
	nextSub int
	subs    map[int]chan struct{}
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithCaps overrides the buffer and display caps.
func WithCaps(buffer, display int) Option {
	return func(r *Reconciler) {
		r.bufferCap = buffer
		r.displayCap = display
	}
}

// NewReconciler creates a reconciler in the inactive state.
func NewReconciler(dial Dialer, logger *slog.Logger, opts ...Option) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconciler{
		dial:       dial,
		logger:     logger,
		bufferCap:  BufferCap,
		displayCap: DisplayCap,
		state:      StateInactive,
		subs:       make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enter starts a live session. Called when the active view becomes whales.
// The connection is opened asynchronously; events begin folding into the
// buffer without waiting for the snapshot fetch.
func (r *Reconciler) Enter(ctx context.Context) {
	r.mu.Lock()
	if r.state == StateConnecting || r.state == StateActive {
		r.mu.Unlock()
		return
	}
	r.state = StateConnecting
	r.buffer = nil
	r.live = false
	stream := r.dial()
	r.stream = stream
	r.done = make(chan struct{})
	done := r.done
	gen := r.gen
	r.mu.Unlock()

	go r.run(ctx, stream, done, gen)
}

// Leave ends the live session. Called whenever the active view changes
// away from whales. The connection is closed and the buffer cleared
// unconditionally; there is no cross-session carryover.
func (r *Reconciler) Leave() {
	r.mu.Lock()
	stream := r.stream
	r.stream = nil
	if r.done != nil {
		close(r.done)
		r.done = nil
	}
	r.state = StateInactive
	r.buffer = nil
	r.live = false
	r.gen++ // orphan any in-flight events from the old session
	r.mu.Unlock()

	if stream != nil {
		if err := stream.Close(); err != nil {
			r.logger.Debug("closing alert stream", "error", err)
		}
	}
	r.notify()
}

// State returns the current stream state.
func (r *Reconciler) State() StreamState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Live reports whether at least one pushed event has been merged in the
// current session.
func (r *Reconciler) Live() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// Buffer returns a copy of the live event buffer, newest-first.
func (r *Reconciler) Buffer() []model.WhaleAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.WhaleAlert, len(r.buffer))
	copy(out, r.buffer)
	return out
}

// Merged derives the displayed list from the current buffer and the given
// snapshot. It is recomputed on every call; arrival order of snapshot vs
// first event does not matter.
func (r *Reconciler) Merged(snapshot []model.WhaleAlert) []model.WhaleAlert {
	return Merge(r.Buffer(), snapshot, r.displayCap)
}

// Subscribe registers for change notifications. The returned channel gets
// a non-blocking signal whenever the buffer or session state changes.
func (r *Reconciler) Subscribe() (int, <-chan struct{}) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	id := r.nextSub
	r.nextSub++
	ch := make(chan struct{}, 1)
	r.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber.
func (r *Reconciler) Unsubscribe(id int) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	delete(r.subs, id)
}

// run connects the stream and folds incoming events until the session ends
// or the connection fails. No reconnection: a failed stream degrades the
// view to snapshot-only for the rest of the session.
func (r *Reconciler) run(ctx context.Context, stream Stream, done <-chan struct{}, gen uint64) {
	if err := stream.Connect(ctx); err != nil {
		r.logger.Warn("alert stream unavailable", "error", err)
		r.fail(gen)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case msg, ok := <-stream.Messages():
			if !ok {
				r.fail(gen)
				return
			}
			alert, err := ParseEvent(msg.Data)
			if err != nil {
				r.logger.Debug("skipping malformed alert event", "error", err)
				continue
			}
			r.push(alert, gen)
		case err := <-stream.Errors():
			r.logger.Warn("alert stream closed", "error", err)
			r.fail(gen)
			return
		}
	}
}

// push prepends a pushed event to the buffer, newest-first, dropping
// duplicates and truncating to the cap. Events from a superseded session
// are discarded.
func (r *Reconciler) push(alert model.WhaleAlert, gen uint64) {
	r.mu.Lock()
	if r.gen != gen {
		r.mu.Unlock()
		return
	}

	for _, existing := range r.buffer {
		if existing.TxHash == alert.TxHash {
			r.mu.Unlock()
			return
		}
	}

	r.buffer = append([]model.WhaleAlert{alert}, r.buffer...)
	if len(r.buffer) > r.bufferCap {
		r.buffer = r.buffer[:r.bufferCap]
	}
	r.state = StateActive
	r.live = true
	r.mu.Unlock()

	r.notify()
}

// fail marks the session degraded unless it already ended.
func (r *Reconciler) fail(gen uint64) {
	r.mu.Lock()
	if r.gen != gen {
		r.mu.Unlock()
		return
	}
	r.state = StateClosedWithError
	r.mu.Unlock()

	r.notify()
}

// notify signals all subscribers without blocking.
func (r *Reconciler) notify() {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
