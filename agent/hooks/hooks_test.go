package hooks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

type capturingPublisher struct {
	events []contractx.LifecycleEvent
	err    error
}

func (c *capturingPublisher) Publish(ctx context.Context, ev contractx.LifecycleEvent) error {
	c.events = append(c.events, ev)
	return c.err
}

func testRequest() contractx.AgentRequest {
	return contractx.AgentRequest{
		Message: "hello",
		Session: hrctx.New("s1", "tenant-a", "u1"),
	}
}

func TestHooksPublishBoundaries(t *testing.T) {
	t.Parallel()

	pub := &capturingPublisher{}
	h := New(pub)
	h.now = func() time.Time { return time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC) }

	req := testRequest()
	h.OnStart(context.Background(), "HR Agent", req)
	h.OnEnd(context.Background(), "HR Agent", req, "all done")

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}

	start := pub.events[0]
	if start.Type != contractx.EventAgentStart || start.Agent != "HR Agent" {
		t.Fatalf("unexpected start event: %+v", start)
	}
	if start.SessionID != "s1" || start.UserID != "u1" || start.TenantID != "tenant-a" {
		t.Fatalf("session identifiers wrong: %+v", start)
	}
	if start.Output != "" {
		t.Fatalf("start event must not carry output: %+v", start)
	}
	if !start.Timestamp.Equal(time.Date(2025, 8, 15, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %v", start.Timestamp)
	}

	end := pub.events[1]
	if end.Type != contractx.EventAgentEnd || end.Output != "all done" {
		t.Fatalf("unexpected end event: %+v", end)
	}
}

func TestHooksTruncateLongOutput(t *testing.T) {
	t.Parallel()

	pub := &capturingPublisher{}
	h := New(pub)

	long := strings.Repeat("я", 300)
	h.OnEnd(context.Background(), "CEO Agent", testRequest(), long)

	got := pub.events[0].Output
	runes := []rune(got)
	if len(runes) != maxOutputPreview+1 {
		t.Fatalf("expected %d runes plus ellipsis, got %d", maxOutputPreview, len(runes))
	}
	if runes[len(runes)-1] != '…' {
		t.Fatalf("truncated output must end with ellipsis: %q", got)
	}
}

func TestHooksSwallowPublishFailure(t *testing.T) {
	t.Parallel()

	pub := &capturingPublisher{err: errors.New("topic unavailable")}
	h := New(pub)

	// Must not panic or propagate anything.
	h.OnStart(context.Background(), "HR Agent", testRequest())
	h.OnEnd(context.Background(), "HR Agent", testRequest(), "done")

	if len(pub.events) != 2 {
		t.Fatalf("expected both publish attempts, got %d", len(pub.events))
	}
}

func TestHooksNilPublisher(t *testing.T) {
	t.Parallel()

	h := New(nil)
	h.OnStart(context.Background(), "HR Agent", testRequest())
	h.OnEnd(context.Background(), "HR Agent", testRequest(), "done")
}

func TestHooksNoSession(t *testing.T) {
	t.Parallel()

	pub := &capturingPublisher{}
	h := New(pub)
	h.OnStart(context.Background(), "HR Agent", contractx.AgentRequest{Message: "hi"})

	if pub.events[0].SessionID != "" {
		t.Fatalf("expected empty session id, got %q", pub.events[0].SessionID)
	}
}
