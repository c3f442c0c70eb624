package registry

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

func TestClassifierRoutesOfficeCulture(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"path":"office_culture"}`},
		},
	}

	classifier, err := newClassifier(context.Background(), fake, "router prompt")
	if err != nil {
		t.Fatalf("newClassifier() error = %v", err)
	}

	decision, err := classifier.Classify(context.Background(), contractx.ClassifyRequest{
		Message: "What is the dress code?",
	})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if decision.Path != contractx.RouteOfficeCulture {
		t.Fatalf("unexpected path: %s", decision.Path)
	}
}

func TestClassifierRoutesApprovalRequest(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"path":"approval_request"}`},
		},
	}

	classifier, err := newClassifier(context.Background(), fake, "router prompt")
	if err != nil {
		t.Fatalf("newClassifier() error = %v", err)
	}

	decision, err := classifier.Classify(context.Background(), contractx.ClassifyRequest{
		Message: "I want a 10% raise",
		History: []contractx.Turn{
			{Role: contractx.RoleUser, Content: "hello"},
			{Role: contractx.RoleAssistant, Content: "hi, how can I help?"},
		},
	})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if decision.Path != contractx.RouteApprovalRequest {
		t.Fatalf("unexpected path: %s", decision.Path)
	}
}

func TestClassifierRejectsUnknownPath(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Content: `{"path":"escalate_to_board"}`},
		},
	}

	classifier, err := newClassifier(context.Background(), fake, "router prompt")
	if err != nil {
		t.Fatalf("newClassifier() error = %v", err)
	}

	_, err = classifier.Classify(context.Background(), contractx.ClassifyRequest{Message: "hello"})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestClassifierRequiresMessage(t *testing.T) {
	t.Parallel()

	classifier, err := newClassifier(context.Background(), &fakeToolCallingModel{}, "router prompt")
	if err != nil {
		t.Fatalf("newClassifier() error = %v", err)
	}

	_, err = classifier.Classify(context.Background(), contractx.ClassifyRequest{Message: "   "})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSummarizeTurnsCapsHistory(t *testing.T) {
	t.Parallel()

	history := make([]contractx.Turn, 0, 25)
	for i := 0; i < 25; i++ {
		history = append(history, contractx.Turn{Role: contractx.RoleUser, Content: "msg"})
	}

	turns := summarizeTurns(history)
	if len(turns) != recentTurnsLimit {
		t.Fatalf("got %d turns, want %d", len(turns), recentTurnsLimit)
	}
}
