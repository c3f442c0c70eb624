package routernode

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// ScreenInput runs the inbound message through the input guardrail before
// any model routing happens. A nil guardrail disables screening.
func ScreenInput(ctx context.Context, in *GraphState, guard contractx.Guardrail) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if guard == nil {
		return in, nil
	}

	if err := guard.Check(ctx, in.Text); err != nil {
		return nil, err
	}
	return in, nil
}
