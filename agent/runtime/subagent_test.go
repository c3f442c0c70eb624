package runtime

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	toolx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/tool"
)

type fakeAgent struct {
	name    string
	reply   string
	err     error
	lastReq contractx.AgentRequest
}

func (f *fakeAgent) Name() string { return f.name }

func (f *fakeAgent) Run(ctx context.Context, req contractx.AgentRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestWithSubAgentsDelegates(t *testing.T) {
	t.Parallel()

	payroll := &fakeAgent{name: "Payroll Agent", reply: "Increase approved at 10%."}
	exec := WithSubAgents(toolx.NewExecutor(), map[string]contractx.Agent{
		"payroll_consultation": payroll,
	})

	sctx := testSession()
	res, err := exec(context.Background(), sctx, "payroll_consultation", map[string]any{
		"request": "Can I get a 10% raise?",
	})
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Output != "Increase approved at 10%." {
		t.Fatalf("unexpected output: %s", res.Output)
	}
	// The sub-agent must see the exact same session context.
	if payroll.lastReq.Session != sctx {
		t.Fatal("sub-agent received a different session context")
	}
}

func TestWithSubAgentsFallsThrough(t *testing.T) {
	t.Parallel()

	exec := WithSubAgents(toolx.NewExecutor(), map[string]contractx.Agent{
		"hr_consultation": &fakeAgent{name: "HR Agent", reply: "ok"},
	})

	res, err := exec(context.Background(), testSession(), toolx.ToolGetUserBasicInfo, nil)
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Output != "User: Alex Johnson, Position: Senior Software Engineer" {
		t.Fatalf("base executor not reached: %s", res.Output)
	}
}

func TestWithSubAgentsMissingRequest(t *testing.T) {
	t.Parallel()

	exec := WithSubAgents(toolx.NewExecutor(), map[string]contractx.Agent{
		"hr_consultation": &fakeAgent{name: "HR Agent", reply: "ok"},
	})

	res, err := exec(context.Background(), testSession(), "hr_consultation", map[string]any{})
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Error == "" {
		t.Fatal("missing request should surface a tool-level error")
	}
}

func TestWithSubAgentsPropagatesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("model unavailable")
	exec := WithSubAgents(toolx.NewExecutor(), map[string]contractx.Agent{
		"hr_consultation": &fakeAgent{name: "HR Agent", err: boom},
	})

	_, err := exec(context.Background(), testSession(), "hr_consultation", map[string]any{
		"request": "check my vacation",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected sub-agent failure to propagate, got %v", err)
	}
}
