package tool

import (
	"fmt"
	"strings"

	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

const maxAlternativeDates = 3

func availableVacationDates(sctx *hrctx.SessionContext) string {
	return fmt.Sprintf("Available vacation dates: %s", strings.Join(sctx.Policy.VacationDates, ", "))
}

// checkVacationRequest partitions the requested dates into approved and
// unavailable by exact string membership in the catalog. No date parsing
// happens here; the calling agent normalizes natural-language dates to
// YYYY-MM-DD before invoking the tool.
func checkVacationRequest(sctx *hrctx.SessionContext, requested []string) string {
	available := sctx.Policy.VacationDates
	availableSet := make(map[string]struct{}, len(available))
	for _, d := range available {
		availableSet[d] = struct{}{}
	}

	var approved, unavailable []string
	for _, d := range requested {
		if _, ok := availableSet[d]; ok {
			approved = append(approved, d)
		} else {
			unavailable = append(unavailable, d)
		}
	}

	u := sctx.User
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Vacation request analysis for %s %s:\n", u.FirstName, u.LastName)
	fmt.Fprintf(&b, "📅 Requested dates: %s\n", strings.Join(requested, ", "))

	if len(approved) > 0 {
		fmt.Fprintf(&b, "✅ Approved dates: %s\n", strings.Join(approved, ", "))
	}
	if len(unavailable) > 0 {
		fmt.Fprintf(&b, "❌ Unavailable dates: %s\n", strings.Join(unavailable, ", "))

		requestedSet := make(map[string]struct{}, len(requested))
		for _, d := range requested {
			requestedSet[d] = struct{}{}
		}
		var alternatives []string
		for _, d := range available {
			if _, ok := requestedSet[d]; ok {
				continue
			}
			alternatives = append(alternatives, d)
			if len(alternatives) == maxAlternativeDates {
				break
			}
		}
		if len(alternatives) > 0 {
			fmt.Fprintf(&b, "💡 Alternative available dates: %s", strings.Join(alternatives, ", "))
		} else {
			fmt.Fprintf(&b, "💡 All available dates: %s", strings.Join(available, ", "))
		}
	}

	return b.String()
}

func checkSingleVacationDate(sctx *hrctx.SessionContext, date string) string {
	u := sctx.User
	for _, d := range sctx.Policy.VacationDates {
		if d == date {
			return fmt.Sprintf("✅ Date %s is available for %s %s", date, u.FirstName, u.LastName)
		}
	}
	return fmt.Sprintf("❌ Date %s is not available for %s %s", date, u.FirstName, u.LastName)
}
