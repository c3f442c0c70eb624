package routernode

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: agent returned empty reply", contractx.ErrSchemaViolation)
	}
	return GraphOutput{Reply: reply, Agent: in.AgentName}, nil
}
