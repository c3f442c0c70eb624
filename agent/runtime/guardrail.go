package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// ChatGuardrail screens inbound messages with a single cheap completion
// before any routing happens. A nil client or empty model disables the
// screen; a BLOCK verdict surfaces as ErrGuardrailTripped, which callers
// map to a user-facing refusal rather than a server error.
type ChatGuardrail struct {
	client *openai.Client
	model  string
	prompt string
}

func NewChatGuardrail(client *openai.Client, model, prompt string) *ChatGuardrail {
	return &ChatGuardrail{
		client: client,
		model:  strings.TrimSpace(model),
		prompt: prompt,
	}
}

func (g *ChatGuardrail) Check(ctx context.Context, message string) error {
	if g == nil || g.client == nil || g.model == "" {
		return nil
	}

	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.prompt),
			openai.UserMessage(message),
		},
		Temperature:         openai.Float(0),
		MaxCompletionTokens: openai.Int(8),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return fmt.Errorf("%w: guardrail completion: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("%w: guardrail returned no choices", contractx.ErrSchemaViolation)
	}

	verdict := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	if strings.HasPrefix(verdict, "BLOCK") {
		return fmt.Errorf("%w: message rejected by input screen", contractx.ErrGuardrailTripped)
	}
	return nil
}
