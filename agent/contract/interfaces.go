package contract

import "context"

// Agent runs one full turn: tool-calling loop until the model produces a
// final natural-language answer. Implementations are stateless configuration;
// per-turn state lives in the execution engine's loop.
type Agent interface {
	Name() string
	Run(ctx context.Context, req AgentRequest) (string, error)
}

// Classifier decides which path an inbound message takes.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (RouteDecision, error)
}

// Registry exposes the configured agents. All agents are built once at
// process start and immutable afterwards.
type Registry interface {
	Classifier() Classifier
	OfficeCulture() Agent
	CEO() Agent
	HR() Agent
	Payroll() Agent
}

// HistoryStore persists conversation turns keyed by session id, ordered by
// append sequence. Access is serialized per session by the store.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]Turn, error)
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	Close() error
}

// EventPublisher delivers lifecycle events to an external topic. Callers
// treat delivery as best-effort and must never fail a turn on publish errors.
type EventPublisher interface {
	Publish(ctx context.Context, ev LifecycleEvent) error
}

// Guardrail screens an inbound message before routing. A refusal is reported
// as an error wrapping ErrGuardrailTripped.
type Guardrail interface {
	Check(ctx context.Context, message string) error
}

// Hooks observe agent boundaries. OnEnd fires only for successful turns.
type Hooks interface {
	OnStart(ctx context.Context, agent string, req AgentRequest)
	OnEnd(ctx context.Context, agent string, req AgentRequest, output string)
}
