// Package runtime holds the agent execution loop: model calls, tool
// dispatch, sub-agent consultation, and the inbound-message guardrail.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
	toolx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/tool"
)

const defaultMaxTurns = 8

type Options struct {
	// ParallelToolCalls lets tool calls from one model turn execute
	// concurrently. Safe because SessionContext is read-only for the turn.
	ParallelToolCalls bool
	MaxTurns          int
}

// LoopAgent is a stateless agent configuration: instructions, a bound tool
// set, and model settings. All per-turn state lives on the stack of Run.
type LoopAgent struct {
	name         string
	agentType    contractx.AgentType
	instructions string
	model        einomodel.BaseChatModel
	executor     toolx.Executor
	hooks        contractx.Hooks
	opts         Options
}

func NewLoopAgent(
	name string,
	agentType contractx.AgentType,
	instructions string,
	chatModel einomodel.ToolCallingChatModel,
	infos []*schema.ToolInfo,
	executor toolx.Executor,
	hooks contractx.Hooks,
	opts Options,
) (*LoopAgent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: agent name is required", contractx.ErrConfiguration)
	}
	if strings.TrimSpace(instructions) == "" {
		return nil, fmt.Errorf("%w: agent=%s instructions are required", contractx.ErrConfiguration, name)
	}

	var model einomodel.BaseChatModel = chatModel
	if len(infos) > 0 {
		bound, err := chatModel.WithTools(infos)
		if err != nil {
			return nil, fmt.Errorf("%w: bind tools for agent=%s: %v", contractx.ErrModelInvoke, name, err)
		}
		model = bound
	}

	return &LoopAgent{
		name:         name,
		agentType:    agentType,
		instructions: instructions,
		model:        model,
		executor:     executor,
		hooks:        hooks,
		opts:         opts,
	}, nil
}

func (a *LoopAgent) Name() string { return a.name }

// Run executes the tool-calling loop for one turn: the model decides which
// of the declared tools to call, tool outputs feed back into the running
// conversation, and the loop ends on the first reply without tool calls.
func (a *LoopAgent) Run(ctx context.Context, req contractx.AgentRequest) (string, error) {
	if req.Session == nil {
		return "", fmt.Errorf("%w: session context is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", contractx.ErrValidation)
	}

	if a.hooks != nil {
		a.hooks.OnStart(ctx, a.name, req)
	}

	messages := a.buildMessages(req)

	maxTurns := a.opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	for turn := 0; turn < maxTurns; turn++ {
		resp, err := a.model.Generate(ctx, messages)
		if err != nil {
			return "", fmt.Errorf("%w: agent=%s generate: %v", contractx.ErrModelInvoke, a.name, err)
		}
		if resp == nil {
			return "", fmt.Errorf("%w: agent=%s empty model response", contractx.ErrSchemaViolation, a.name)
		}

		if len(resp.ToolCalls) == 0 {
			output := strings.TrimSpace(resp.Content)
			if output == "" {
				return "", fmt.Errorf("%w: agent=%s final message is empty", contractx.ErrSchemaViolation, a.name)
			}
			if a.hooks != nil {
				a.hooks.OnEnd(ctx, a.name, req, output)
			}
			return output, nil
		}

		messages = append(messages, resp)

		toolMessages, err := a.executeCalls(ctx, req.Session, resp.ToolCalls)
		if err != nil {
			return "", err
		}
		messages = append(messages, toolMessages...)
	}

	return "", fmt.Errorf("%w: agent=%s exceeded %d tool-calling turns", contractx.ErrModelInvoke, a.name, maxTurns)
}

func (a *LoopAgent) buildMessages(req contractx.AgentRequest) []*schema.Message {
	messages := make([]*schema.Message, 0, len(req.History)+2)
	messages = append(messages, schema.SystemMessage(a.instructions))

	for _, turn := range req.History {
		switch turn.Role {
		case contractx.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		default:
			messages = append(messages, schema.UserMessage(turn.Content))
		}
	}

	return append(messages, schema.UserMessage(req.Message))
}

// executeCalls runs every tool call from one model turn. Tool messages are
// appended in call order regardless of completion order so repeated runs
// produce identical transcripts.
func (a *LoopAgent) executeCalls(
	ctx context.Context,
	sctx *hrctx.SessionContext,
	calls []schema.ToolCall,
) ([]*schema.Message, error) {
	results := make([]contractx.ToolResult, len(calls))
	errs := make([]error, len(calls))

	if a.opts.ParallelToolCalls && len(calls) > 1 {
		var wg sync.WaitGroup
		for i, call := range calls {
			wg.Add(1)
			go func(idx int, call schema.ToolCall) {
				defer wg.Done()
				results[idx], errs[idx] = a.executeCall(ctx, sctx, call)
			}(i, call)
		}
		wg.Wait()
	} else {
		for i, call := range calls {
			results[i], errs[i] = a.executeCall(ctx, sctx, call)
		}
	}

	messages := make([]*schema.Message, 0, len(calls))
	for i, call := range calls {
		if errs[i] != nil {
			return nil, errs[i]
		}
		text := results[i].Text()
		if text == "" {
			text = "(no output)"
		}
		messages = append(messages, schema.ToolMessage(text, call.ID))
	}

	return messages, nil
}

func (a *LoopAgent) executeCall(
	ctx context.Context,
	sctx *hrctx.SessionContext,
	call schema.ToolCall,
) (contractx.ToolResult, error) {
	name := strings.TrimSpace(call.Function.Name)
	if name == "" {
		return contractx.ToolResult{}, fmt.Errorf("%w: agent=%s tool call name is empty", contractx.ErrSchemaViolation, a.name)
	}

	args := map[string]any{}
	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return contractx.ToolResult{}, fmt.Errorf("%w: invalid args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
		}
	}

	res, err := a.executor(ctx, sctx, name, args)
	if err != nil {
		return contractx.ToolResult{}, err
	}
	if res.Error != "" {
		log.Warn().Str("agent", a.name).Str("tool", name).Str("error", res.Error).Msg("tool call rejected")
	}
	return res, nil
}
