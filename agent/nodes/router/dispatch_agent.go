package routernode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// DispatchAgent hands the message to the agent the route decision selected.
// Office-culture questions go straight to the culture agent; everything that
// needs an approval goes through the CEO coordinator.
func DispatchAgent(ctx context.Context, in *GraphState, models contractx.Registry) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if models == nil {
		return nil, fmt.Errorf("%w: agent registry is required", contractx.ErrConfiguration)
	}

	var target contractx.Agent
	switch in.Route.Path {
	case contractx.RouteOfficeCulture:
		target = models.OfficeCulture()
	case contractx.RouteApprovalRequest:
		target = models.CEO()
	default:
		return nil, fmt.Errorf("%w: no agent for route path=%q", contractx.ErrSchemaViolation, in.Route.Path)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: agent for path=%q is not configured", contractx.ErrConfiguration, in.Route.Path)
	}

	log.Info().
		Str("session_id", in.SessionID).
		Str("path", string(in.Route.Path)).
		Str("agent", target.Name()).
		Msg("dispatching message")

	reply, err := target.Run(ctx, contractx.AgentRequest{
		Message: in.Text,
		History: in.History,
		Session: in.Session,
	})
	if err != nil {
		return nil, err
	}

	in.AgentName = target.Name()
	in.Reply = reply
	return in, nil
}
