// Package routernode holds the per-node functions of the message handling
// graph. Each node takes the shared GraphState, does one step, and hands the
// state to the next node.
package routernode

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

var (
	ErrInvalidMessage = fmt.Errorf("%w: message is empty", contractx.ErrValidation)
)

type GraphInput struct {
	SessionID string
	UserID    string
	TenantID  string
	Text      string
}

type GraphOutput struct {
	Reply string
	Agent string
}

type GraphState struct {
	SessionID string
	UserID    string
	TenantID  string
	Text      string
	Now       time.Time

	Session *hrctx.SessionContext
	History []contractx.Turn
	Route   contractx.RouteDecision

	AgentName string
	Reply     string
}

// ValidateRequest normalizes the inbound request. Session and tenant ids
// fall back to defaults later in BuildContext, so only the message itself
// is mandatory.
func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: strings.TrimSpace(in.SessionID),
		UserID:    strings.TrimSpace(in.UserID),
		TenantID:  strings.TrimSpace(in.TenantID),
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
