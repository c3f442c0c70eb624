package tool

import (
	"context"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

func testSession() *hrctx.SessionContext {
	return hrctx.New("test-session", "test-tenant", "")
}

func TestAllowedCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		rating    int
		want      int
	}{
		{name: "requested below ceiling", requested: 10, rating: 85, want: 10},
		{name: "requested above ceiling", requested: 20, rating: 75, want: 15},
		{name: "requested equals ceiling", requested: 40, rating: 80, want: 40},
		{name: "integer division truncates", requested: 50, rating: 89, want: 40},
		{name: "zero rating", requested: 5, rating: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := allowedCap(tt.requested, tt.rating); got != tt.want {
				t.Fatalf("allowedCap(%d, %d) = %d, want %d", tt.requested, tt.rating, got, tt.want)
			}
		})
	}
}

func TestCalculateSalaryIncreaseApproved(t *testing.T) {
	t.Parallel()

	sctx := testSession()
	out := calculateSalaryIncrease(sctx, 10)

	if !strings.HasPrefix(out, "✅ Salary increase analysis for Alex Johnson") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "New salary: $104,500.00") {
		t.Fatalf("new salary missing or wrong: %s", out)
	}
	if !strings.Contains(out, "Increase amount: $9,500.00") {
		t.Fatalf("increase amount missing or wrong: %s", out)
	}
}

func TestCalculateSalaryIncreaseUnknownPercentage(t *testing.T) {
	t.Parallel()

	out := calculateSalaryIncrease(testSession(), 7)
	if !strings.Contains(out, "❌ Percentage 7% is not available") {
		t.Fatalf("expected catalog rejection, got: %s", out)
	}
	if !strings.Contains(out, "5, 10, 15, 20%") {
		t.Fatalf("available percentages missing: %s", out)
	}
}

func TestCalculateSalaryIncreaseLowRating(t *testing.T) {
	t.Parallel()

	sctx := testSession()
	sctx.User.EmployeeRating = 65
	out := calculateSalaryIncrease(sctx, 5)

	if !strings.Contains(out, "❌ Salary increase unavailable. Minimum rating required: 70, current rating: 65") {
		t.Fatalf("expected rating rejection, got: %s", out)
	}
}

func TestCalculateSalaryIncreaseCapped(t *testing.T) {
	t.Parallel()

	sctx := testSession()
	// Rating 70 caps at 35%, so 20% passes untouched.
	sctx.User.EmployeeRating = 70
	out := calculateSalaryIncrease(sctx, 20)
	if !strings.HasPrefix(out, "✅") {
		t.Fatalf("20%% at rating 70 should be fully approved, got: %s", out)
	}

	// 40% added to the catalog exceeds the 35% ceiling and gets reduced.
	sctx.Policy.RaisePercentages = append(sctx.Policy.RaisePercentages, 40)
	out = calculateSalaryIncrease(sctx, 40)
	if !strings.Contains(out, "⚠️ Requested increase 40% exceeds allowed amount for your rating.") {
		t.Fatalf("expected capped branch, got: %s", out)
	}
	if !strings.Contains(out, "Recommended increase: 35%") {
		t.Fatalf("recommended increase missing: %s", out)
	}
}

func TestMaxAllowedSalaryIncrease(t *testing.T) {
	t.Parallel()

	sctx := testSession()
	out := maxAllowedSalaryIncrease(sctx)
	if out != "Maximum allowed salary increase for rating 85: 20%" {
		t.Fatalf("unexpected output: %s", out)
	}

	sctx.User.EmployeeRating = 60
	out = maxAllowedSalaryIncrease(sctx)
	if !strings.Contains(out, "❌ No salary increase allowed") {
		t.Fatalf("expected rejection, got: %s", out)
	}

	sctx.User.EmployeeRating = 70
	sctx.Policy.RaisePercentages = []int{40, 50}
	out = maxAllowedSalaryIncrease(sctx)
	if out != "No salary increase percentages available for rating 70" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestAnalyzeEmployeeEligibilityBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating int
		want   string
	}{
		{name: "excellent", rating: 95, want: "⭐ Excellent performance"},
		{name: "good", rating: 85, want: "👍 Good performance"},
		{name: "satisfactory", rating: 72, want: "📈 Satisfactory performance"},
		{name: "below expectations", rating: 50, want: "📉 Below expectations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sctx := testSession()
			sctx.User.EmployeeRating = tt.rating
			out := analyzeEmployeeEligibility(sctx)

			if !strings.Contains(out, tt.want) {
				t.Fatalf("rating %d: expected %q in output: %s", tt.rating, tt.want, out)
			}
			if !strings.Contains(out, "✅ Eligible for vacation requests") {
				t.Fatalf("vacation eligibility line missing: %s", out)
			}
			if tt.rating < 70 && !strings.Contains(out, "❌ Not eligible for salary increases") {
				t.Fatalf("expected salary ineligibility for rating %d: %s", tt.rating, out)
			}
		})
	}
}

func TestExecutorDispatch(t *testing.T) {
	t.Parallel()

	exec := NewExecutor()
	sctx := testSession()

	res, err := exec(context.Background(), sctx, ToolCalculateSalaryIncrease, map[string]any{"percentage": float64(10)})
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected tool error: %s", res.Error)
	}
	if !strings.HasPrefix(res.Output, "✅ Salary increase analysis") {
		t.Fatalf("unexpected output: %s", res.Output)
	}

	res, err = exec(context.Background(), sctx, ToolCalculateSalaryIncrease, map[string]any{})
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Error == "" {
		t.Fatal("missing argument should surface a tool-level error")
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	t.Parallel()

	exec := NewExecutor()
	res, err := exec(context.Background(), testSession(), "delete_employee", nil)
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if res.Error == "" {
		t.Fatal("unknown tool should produce a tool-level error, not a Go error")
	}
}

func TestExecutorIsIdempotent(t *testing.T) {
	t.Parallel()

	exec := NewExecutor()
	sctx := testSession()

	first, err := exec(context.Background(), sctx, ToolAnalyzeEmployeeEligibility, nil)
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	second, err := exec(context.Background(), sctx, ToolAnalyzeEmployeeEligibility, nil)
	if err != nil {
		t.Fatalf("executor error: %v", err)
	}
	if first.Output != second.Output {
		t.Fatalf("repeated calls diverged:\n%s\n%s", first.Output, second.Output)
	}
}

func TestInfosForAgentToolSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		agentType contractx.AgentType
		count     int
	}{
		{agentType: contractx.AgentTypeOfficeCulture, count: 2},
		{agentType: contractx.AgentTypeHR, count: 8},
		{agentType: contractx.AgentTypePayroll, count: 9},
		{agentType: contractx.AgentTypeCEO, count: 4},
		{agentType: contractx.AgentTypeRouter, count: 0},
	}

	for _, tt := range tests {
		infos := InfosForAgent(tt.agentType)
		if len(infos) != tt.count {
			t.Fatalf("agent %s: got %d tools, want %d", tt.agentType, len(infos), tt.count)
		}
		seen := make(map[string]struct{}, len(infos))
		for _, info := range infos {
			if _, dup := seen[info.Name]; dup {
				t.Fatalf("agent %s declares tool %s twice", tt.agentType, info.Name)
			}
			seen[info.Name] = struct{}{}
		}
	}
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 95000, want: "95,000.00"},
		{in: 104500, want: "104,500.00"},
		{in: 999.5, want: "999.50"},
		{in: 1234567.89, want: "1,234,567.89"},
		{in: 0, want: "0.00"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Fatalf("formatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
