package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// recentTurnsLimit bounds the history included in the classification
// payload so routing stays cheap on long sessions.
const recentTurnsLimit = 10

type classifierImpl struct {
	runner compose.Runnable[map[string]any, classifierLLMOutput]
}

type classifierLLMOutput struct {
	Path string `json:"path"`
}

func newClassifier(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*classifierImpl, error) {
	runner, err := compileClassifierGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile classifier graph: %v", contractx.ErrModelInvoke, err)
	}
	return &classifierImpl{runner: runner}, nil
}

func (c *classifierImpl) Classify(ctx context.Context, req contractx.ClassifyRequest) (contractx.RouteDecision, error) {
	if strings.TrimSpace(req.Message) == "" {
		return contractx.RouteDecision{}, fmt.Errorf("%w: message is required", contractx.ErrValidation)
	}

	payload := map[string]any{
		"user_message": req.Message,
		"recent_turns": summarizeTurns(req.History),
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.RouteDecision{}, fmt.Errorf("%w: marshal classify payload: %v", contractx.ErrValidation, err)
	}

	out, err := c.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.RouteDecision{}, fmt.Errorf("%w: classifier invoke: %v", contractx.ErrModelInvoke, err)
	}

	path := contractx.RoutePath(strings.TrimSpace(out.Path))
	switch path {
	case contractx.RouteOfficeCulture, contractx.RouteApprovalRequest:
	default:
		return contractx.RouteDecision{}, fmt.Errorf("%w: unsupported route path=%q", contractx.ErrSchemaViolation, out.Path)
	}

	return contractx.RouteDecision{Path: path}, nil
}

func summarizeTurns(history []contractx.Turn) []map[string]string {
	if len(history) > recentTurnsLimit {
		history = history[len(history)-recentTurnsLimit:]
	}
	turns := make([]map[string]string, 0, len(history))
	for _, t := range history {
		turns = append(turns, map[string]string{
			"role":    t.Role,
			"content": t.Content,
		})
	}
	return turns
}

func compileClassifierGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, classifierLLMOutput], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	parser := schema.NewMessageJSONParser[classifierLLMOutput](&schema.MessageJSONParseConfig{
		ParseFrom: schema.MessageParseFromContent,
	})

	graph := compose.NewGraph[map[string]any, classifierLLMOutput]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add classifier prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add classifier model node: %w", err)
	}
	if err := graph.AddLambdaNode("parse_json", compose.MessageParser(parser)); err != nil {
		return nil, fmt.Errorf("add classifier parser node: %w", err)
	}

	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add classifier edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add classifier edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", "parse_json"); err != nil {
		return nil, fmt.Errorf("add classifier edge model->parse: %w", err)
	}
	if err := graph.AddEdge("parse_json", compose.END); err != nil {
		return nil, fmt.Errorf("add classifier edge parse->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("router.classifier_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile classifier graph: %w", err)
	}
	return runner, nil
}
