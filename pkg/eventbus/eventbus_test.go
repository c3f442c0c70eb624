package eventbus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

func sampleEvent() contractx.LifecycleEvent {
	return contractx.LifecycleEvent{
		Timestamp: time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC),
		Agent:     "HR Agent",
		Type:      contractx.EventAgentStart,
		SessionID: "s1",
		UserID:    "123_id",
		TenantID:  "default-tenant",
	}
}

func TestPublisherDisabledSentinel(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	p, err := NewPublisher(Config{Project: DisabledProject, URL: srv.URL})
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}
	if !p.Disabled() {
		t.Fatal("publisher should be disabled")
	}
	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("disabled publisher must not touch the network")
	}
}

func TestPublisherEmptyProjectDisables(t *testing.T) {
	t.Parallel()

	p, err := NewPublisher(Config{Project: "  "})
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}
	if !p.Disabled() {
		t.Fatal("blank project should disable publishing")
	}
}

func TestPublisherPostsEvent(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotEvent contractx.LifecycleEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotEvent); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p, err := NewPublisher(Config{
		Project: "hr-assistant",
		Topic:   "agent-lifecycle",
		URL:     srv.URL,
		Token:   "secret",
	})
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if gotPath != "/projects/hr-assistant/topics/agent-lifecycle" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotEvent.Agent != "HR Agent" || gotEvent.Type != contractx.EventAgentStart {
		t.Fatalf("unexpected event payload: %+v", gotEvent)
	}
}

func TestPublisherNon2xxIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := NewPublisher(Config{Project: "hr-assistant", Topic: "t", URL: srv.URL})
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	if err := p.Publish(context.Background(), sampleEvent()); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestNewPublisherRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewPublisher(Config{Project: "hr-assistant", Topic: "t"}); err == nil {
		t.Fatal("enabled publisher without url must fail")
	}
}
