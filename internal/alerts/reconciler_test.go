package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Bakuzaci/zora-dash/internal/connection"
	"github.com/Bakuzaci/zora-dash/internal/model"
)

// fakeStream is an in-memory stand-in for the WebSocket client.
type fakeStream struct {
	connectErr error
	messages   chan connection.TimestampedMessage
	errs       chan error

	mu     sync.Mutex
	closed bool
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		messages: make(chan connection.TimestampedMessage, 64),
		errs:     make(chan error, 1),
	}
}

func (s *fakeStream) Connect(ctx context.Context) error { return s.connectErr }

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeStream) Messages() <-chan connection.TimestampedMessage { return s.messages }
func (s *fakeStream) Errors() <-chan error                           { return s.errs }

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// pushEvent delivers one whale trade over the fake stream.
func (s *fakeStream) pushEvent(t *testing.T, tx string, amount float64) {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"transactionHash": tx,
		"timestamp":       time.Now().Unix(),
		"amountUsd":       amount,
		"direction":       "buy",
	})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	s.messages <- connection.TimestampedMessage{Data: data, ReceivedAt: time.Now()}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func newTestReconciler(stream *fakeStream) *Reconciler {
	return NewReconciler(func() Stream { return stream }, nil)
}

func TestEnterOpensStream(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)

	if r.State() != StateInactive {
		t.Fatalf("initial state = %q", r.State())
	}

	r.Enter(context.Background())
	if s := r.State(); s != StateConnecting {
		t.Fatalf("state after Enter = %q, want connecting", s)
	}

	stream.pushEvent(t, "0xt1", 5000)
	waitFor(t, func() bool { return r.State() == StateActive }, "never became active")

	if !r.Live() {
		t.Error("live should be true after first merged event")
	}
	buf := r.Buffer()
	if len(buf) != 1 || buf[0].TxHash != "0xt1" {
		t.Errorf("buffer = %v", buf)
	}
}

func TestEventsNewestFirstAndCapped(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	for i := 0; i < BufferCap+10; i++ {
		stream.pushEvent(t, fmt.Sprintf("0xt%d", i), 2000)
	}
	waitFor(t, func() bool { return len(r.Buffer()) == BufferCap }, "buffer never filled to cap")

	buf := r.Buffer()
	if len(buf) != BufferCap {
		t.Fatalf("buffer length = %d, want %d", len(buf), BufferCap)
	}
	if buf[0].TxHash != fmt.Sprintf("0xt%d", BufferCap+9) {
		t.Errorf("newest event is %q, want the last pushed", buf[0].TxHash)
	}
}

func TestDuplicatePushIgnored(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	stream.pushEvent(t, "0xdup", 2000)
	stream.pushEvent(t, "0xdup", 2000)
	stream.pushEvent(t, "0xother", 2000)
	waitFor(t, func() bool { return len(r.Buffer()) == 2 }, "expected 2 distinct events")

	time.Sleep(10 * time.Millisecond)
	if n := len(r.Buffer()); n != 2 {
		t.Errorf("buffer length = %d after duplicate push, want 2", n)
	}
}

func TestLeaveClosesAndClears(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	stream.pushEvent(t, "0xt1", 2000)
	waitFor(t, func() bool { return r.Live() }, "never went live")

	r.Leave()

	if !stream.isClosed() {
		t.Error("stream not closed on Leave")
	}
	if r.State() != StateInactive {
		t.Errorf("state = %q, want inactive", r.State())
	}
	if len(r.Buffer()) != 0 {
		t.Errorf("buffer not cleared: %v", r.Buffer())
	}
	if r.Live() {
		t.Error("live flag not reset")
	}
}

// Re-entry starts from an empty buffer even if the previous session was at
// cap; an event from the old session must not leak into the new one.
func TestReentryStartsEmpty(t *testing.T) {
	old := newFakeStream()
	fresh := newFakeStream()
	streams := []*fakeStream{old, fresh}
	var n int
	r := NewReconciler(func() Stream {
		s := streams[n]
		n++
		return s
	}, nil)

	ctx := context.Background()
	r.Enter(ctx)
	for i := 0; i < BufferCap; i++ {
		old.pushEvent(t, fmt.Sprintf("0xold%d", i), 2000)
	}
	waitFor(t, func() bool { return len(r.Buffer()) == BufferCap }, "old session never filled")

	r.Leave()
	r.Enter(ctx)

	if len(r.Buffer()) != 0 {
		t.Fatalf("fresh session buffer = %v, want empty", r.Buffer())
	}

	// A straggler event on the closed session is discarded.
	old.pushEvent(t, "0xstraggler", 2000)
	fresh.pushEvent(t, "0xnew", 2000)
	waitFor(t, func() bool { return len(r.Buffer()) == 1 }, "fresh event not applied")

	buf := r.Buffer()
	if buf[0].TxHash != "0xnew" {
		t.Errorf("buffer = %v, want only the fresh event", buf)
	}
}

func TestConnectFailureDegrades(t *testing.T) {
	stream := newFakeStream()
	stream.connectErr = errors.New("dial tcp: connection refused")
	r := newTestReconciler(stream)

	r.Enter(context.Background())
	waitFor(t, func() bool { return r.State() == StateClosedWithError }, "never degraded")

	if r.Live() {
		t.Error("live should stay false in a degraded session")
	}
	// The merged list still serves the snapshot alone.
	snapshot := []model.WhaleAlert{alert("A"), alert("B")}
	if got := r.Merged(snapshot); len(got) != 2 {
		t.Errorf("degraded merge = %v", hashes(got))
	}
}

func TestStreamErrorDegradesKeepingBuffer(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	stream.pushEvent(t, "0xt1", 2000)
	waitFor(t, func() bool { return r.Live() }, "never went live")

	stream.errs <- errors.New("unexpected EOF")
	waitFor(t, func() bool { return r.State() == StateClosedWithError }, "never degraded")

	// No auto-retry: state stays degraded, merged events already received
	// remain visible.
	if len(r.Buffer()) != 1 {
		t.Errorf("buffer = %v", r.Buffer())
	}
}

func TestMalformedEventSkipped(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	stream.messages <- connection.TimestampedMessage{Data: []byte("not json"), ReceivedAt: time.Now()}
	stream.messages <- connection.TimestampedMessage{Data: []byte(`{"amountUsd": 5}`), ReceivedAt: time.Now()}
	stream.pushEvent(t, "0xgood", 2000)

	waitFor(t, func() bool { return len(r.Buffer()) == 1 }, "good event not applied")
	if buf := r.Buffer(); buf[0].TxHash != "0xgood" {
		t.Errorf("buffer = %v", buf)
	}
}

func TestSubscribeNotifies(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	id, ch := r.Subscribe()
	defer r.Unsubscribe(id)

	r.Enter(context.Background())
	stream.pushEvent(t, "0xt1", 2000)

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no notification for pushed event")
	}
}

func TestMergedSnapshotInterleaving(t *testing.T) {
	stream := newFakeStream()
	r := newTestReconciler(stream)
	r.Enter(context.Background())

	// Two live events arrive, one a duplicate of a snapshot row that
	// lands afterwards: [D, A] + [A, B, C] must render [D, A, B, C].
	stream.pushEvent(t, "A", 2000)
	stream.pushEvent(t, "D", 2000)
	waitFor(t, func() bool { return len(r.Buffer()) == 2 }, "events not applied")

	snapshot := []model.WhaleAlert{alert("A"), alert("B"), alert("C")}
	got := hashes(r.Merged(snapshot))
	want := []string{"D", "A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged = %v, want %v", got, want)
		}
	}
	if len(got) != 4 {
		t.Fatalf("merged length = %d, want 4", len(got))
	}
}
