package routernode

import (
	"fmt"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

// BuildContext materializes the immutable per-turn session context. Blank
// session and tenant ids resolve to the store defaults here, so every later
// node sees the resolved identifiers.
func BuildContext(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	session := hrctx.New(in.SessionID, in.TenantID, in.UserID)
	in.Session = session
	in.SessionID = session.SessionID
	in.UserID = session.User.UserID
	in.TenantID = session.TenantID
	return in, nil
}
