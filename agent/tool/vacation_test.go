package tool

import (
	"strings"
	"testing"
)

func TestCheckVacationRequestPartition(t *testing.T) {
	t.Parallel()

	sctx := testSession()
	out := checkVacationRequest(sctx, []string{"2025-08-15", "2025-08-16", "2025-08-17"})

	if !strings.Contains(out, "✅ Approved dates: 2025-08-15") {
		t.Fatalf("approved dates wrong: %s", out)
	}
	if !strings.Contains(out, "❌ Unavailable dates: 2025-08-16, 2025-08-17") {
		t.Fatalf("unavailable dates wrong: %s", out)
	}
	if !strings.Contains(out, "💡 Alternative available dates:") {
		t.Fatalf("alternatives missing: %s", out)
	}
	// Alternatives exclude requested dates and stay capped at three.
	if strings.Contains(out, "Alternative available dates: 2025-08-15") {
		t.Fatalf("alternatives must not repeat requested dates: %s", out)
	}
	altLine := out[strings.Index(out, "💡"):]
	if got := strings.Count(altLine, "2025-"); got > maxAlternativeDates {
		t.Fatalf("got %d alternatives, want at most %d: %s", got, maxAlternativeDates, altLine)
	}
}

func TestCheckVacationRequestAllApproved(t *testing.T) {
	t.Parallel()

	out := checkVacationRequest(testSession(), []string{"2025-08-20", "2025-09-01"})

	if !strings.Contains(out, "✅ Approved dates: 2025-08-20, 2025-09-01") {
		t.Fatalf("approved dates wrong: %s", out)
	}
	if strings.Contains(out, "❌") {
		t.Fatalf("no unavailable section expected: %s", out)
	}
	if strings.Contains(out, "💡") {
		t.Fatalf("no alternatives expected when everything is approved: %s", out)
	}
}

func TestCheckVacationRequestNoneApproved(t *testing.T) {
	t.Parallel()

	out := checkVacationRequest(testSession(), []string{"2025-12-24", "2025-12-25"})

	if strings.Contains(out, "✅ Approved dates") {
		t.Fatalf("no approved section expected: %s", out)
	}
	if !strings.Contains(out, "❌ Unavailable dates: 2025-12-24, 2025-12-25") {
		t.Fatalf("unavailable dates wrong: %s", out)
	}
	if !strings.Contains(out, "💡 Alternative available dates: 2025-08-15, 2025-08-20, 2025-08-21") {
		t.Fatalf("alternatives should be the first three catalog dates: %s", out)
	}
}

func TestCheckSingleVacationDate(t *testing.T) {
	t.Parallel()

	sctx := testSession()

	if out := checkSingleVacationDate(sctx, "2025-09-05"); out != "✅ Date 2025-09-05 is available for Alex Johnson" {
		t.Fatalf("unexpected output: %s", out)
	}
	if out := checkSingleVacationDate(sctx, "2025-01-01"); out != "❌ Date 2025-01-01 is not available for Alex Johnson" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestAvailableVacationDates(t *testing.T) {
	t.Parallel()

	out := availableVacationDates(testSession())
	want := "Available vacation dates: 2025-08-15, 2025-08-20, 2025-08-21, 2025-09-01, 2025-09-05, 2025-09-12"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
