package runtime

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
	toolx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/tool"
)

// SubAgentToolInfo declares a whole agent as a callable consultation tool.
// Invoking it re-enters that agent's full tool-calling loop with the same
// session context; the sub-agent's final text becomes the tool result.
func SubAgentToolInfo(name, desc string) *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: name,
		Desc: desc,
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"request": {
				Type:     schema.String,
				Desc:     "The question or task to delegate to the department",
				Required: true,
			},
		}),
	}
}

// WithSubAgents layers sub-agent consultation tools over a base executor.
// Tool names present in subs run the mapped agent; everything else falls
// through to base.
func WithSubAgents(base toolx.Executor, subs map[string]contractx.Agent) toolx.Executor {
	return func(ctx context.Context, sctx *hrctx.SessionContext, tool string, args map[string]any) (contractx.ToolResult, error) {
		sub, ok := subs[tool]
		if !ok {
			return base(ctx, sctx, tool, args)
		}

		request, _ := args["request"].(string)
		if strings.TrimSpace(request) == "" {
			return contractx.ToolResult{Tool: tool, Error: "request is required"}, nil
		}

		output, err := sub.Run(ctx, contractx.AgentRequest{
			Message: request,
			Session: sctx,
		})
		if err != nil {
			return contractx.ToolResult{}, err
		}

		return contractx.ToolResult{Tool: tool, Output: output}, nil
	}
}
