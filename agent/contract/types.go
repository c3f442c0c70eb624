package contract

import (
	"time"

	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

type AgentType string

const (
	AgentTypeRouter        AgentType = "router"
	AgentTypeOfficeCulture AgentType = "office_culture"
	AgentTypeCEO           AgentType = "ceo"
	AgentTypeHR            AgentType = "hr"
	AgentTypePayroll       AgentType = "payroll"
)

// RoutePath is the router's classification of an inbound message.
type RoutePath string

const (
	RouteOfficeCulture   RoutePath = "office_culture"
	RouteApprovalRequest RoutePath = "approval_request"
)

// Turn is one persisted conversation entry. Role is "user" or "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AgentRequest carries one invocation's input into an agent. Session is
// shared by reference across every tool and sub-agent call of the turn and
// must be treated as read-only.
type AgentRequest struct {
	Message string
	History []Turn
	Session *hrctx.SessionContext
}

type ClassifyRequest struct {
	Message string
	History []Turn
}

type RouteDecision struct {
	Path RoutePath `json:"path"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Text returns what the model should see for this result. Business
// rejections arrive in Output; Error is reserved for malformed calls.
func (r ToolResult) Text() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Output
}

// LifecycleEvent is emitted on every agent start and end boundary.
type LifecycleEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Type      string    `json:"type"` // "agent_start" | "agent_end"
	Output    string    `json:"output,omitempty"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
}

const (
	EventAgentStart = "agent_start"
	EventAgentEnd   = "agent_end"
)

// AgentInfo is the static metadata served by the agents endpoint.
type AgentInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	Status       string   `json:"status"`
}
