// Package hooks observes agent start/end boundaries and forwards lifecycle
// events to the event bus. Publishing never interferes with the agent's own
// execution: failures are logged and dropped.
package hooks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// maxOutputPreview bounds the final-output rendering carried in end events.
const maxOutputPreview = 200

type LifecycleHooks struct {
	publisher contractx.EventPublisher
	now       func() time.Time
}

func New(publisher contractx.EventPublisher) *LifecycleHooks {
	return &LifecycleHooks{
		publisher: publisher,
		now:       time.Now,
	}
}

func (h *LifecycleHooks) OnStart(ctx context.Context, agent string, req contractx.AgentRequest) {
	ev := h.event(agent, contractx.EventAgentStart, "", req)

	log.Info().
		Str("agent", agent).
		Str("session_id", ev.SessionID).
		Msg("agent started execution")

	h.publish(ctx, ev)
}

func (h *LifecycleHooks) OnEnd(ctx context.Context, agent string, req contractx.AgentRequest, output string) {
	ev := h.event(agent, contractx.EventAgentEnd, truncate(output, maxOutputPreview), req)

	log.Info().
		Str("agent", agent).
		Str("session_id", ev.SessionID).
		Str("output", ev.Output).
		Msg("agent completed execution")

	h.publish(ctx, ev)
}

func (h *LifecycleHooks) event(agent, eventType, output string, req contractx.AgentRequest) contractx.LifecycleEvent {
	ev := contractx.LifecycleEvent{
		Timestamp: h.now().UTC(),
		Agent:     agent,
		Type:      eventType,
		Output:    output,
	}
	if req.Session != nil {
		ev.SessionID = req.Session.SessionID
		ev.UserID = req.Session.User.UserID
		ev.TenantID = req.Session.TenantID
	}
	return ev
}

func (h *LifecycleHooks) publish(ctx context.Context, ev contractx.LifecycleEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, ev); err != nil {
		log.Warn().
			Err(err).
			Str("agent", ev.Agent).
			Str("type", ev.Type).
			Msg("lifecycle event publish failed")
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
