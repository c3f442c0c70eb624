package tool

import (
	"fmt"
	"strings"

	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

// minRatingForRaise and the cap formula below are fixed business rules, not
// configuration. Preserve them exactly on change requests.
const minRatingForRaise = 70

// allowedCap is the rating-derived ceiling on an approvable increase:
// min(requested, (rating/10)*5) with integer division.
func allowedCap(requested, rating int) int {
	ceiling := rating / 10 * 5
	if requested < ceiling {
		return requested
	}
	return ceiling
}

func availableSalaryIncreases(sctx *hrctx.SessionContext) string {
	return fmt.Sprintf("Available salary increase percentages: %s%%", joinInts(sctx.Policy.RaisePercentages))
}

func calculateSalaryIncrease(sctx *hrctx.SessionContext, percentage int) string {
	u := sctx.User
	catalog := sctx.Policy.RaisePercentages

	if !containsInt(catalog, percentage) {
		return fmt.Sprintf("❌ Percentage %d%% is not available. Available percentages: %s%%",
			percentage, joinInts(catalog))
	}

	if u.EmployeeRating < minRatingForRaise {
		return fmt.Sprintf("❌ Salary increase unavailable. Minimum rating required: %d, current rating: %d",
			minRatingForRaise, u.EmployeeRating)
	}

	capPct := allowedCap(percentage, u.EmployeeRating)
	if capPct < percentage {
		adjusted := u.CurrentSalary * (1 + float64(capPct)/100)
		return fmt.Sprintf("⚠️ Requested increase %d%% exceeds allowed amount for your rating.\n"+
			"Recommended increase: %d%%\n"+
			"New salary: $%s (increase of $%s)",
			percentage, capPct, formatMoney(adjusted), formatMoney(adjusted-u.CurrentSalary))
	}

	newSalary := u.CurrentSalary * (1 + float64(percentage)/100)
	return fmt.Sprintf("✅ Salary increase analysis for %s %s:\n"+
		"Current salary: $%s\n"+
		"Increase: %d%%\n"+
		"New salary: $%s\n"+
		"Increase amount: $%s\n"+
		"Employee rating: %d/100 ✅",
		u.FirstName, u.LastName, formatMoney(u.CurrentSalary), percentage,
		formatMoney(newSalary), formatMoney(newSalary-u.CurrentSalary), u.EmployeeRating)
}

func maxAllowedSalaryIncrease(sctx *hrctx.SessionContext) string {
	rating := sctx.User.EmployeeRating

	if rating < minRatingForRaise {
		return fmt.Sprintf("❌ No salary increase allowed. Minimum rating required: %d, current rating: %d",
			minRatingForRaise, rating)
	}

	maxPercentage := rating / 10 * 5
	best, found := 0, false
	for _, p := range sctx.Policy.RaisePercentages {
		if p <= maxPercentage && p > best {
			best, found = p, true
		}
	}

	if !found {
		return fmt.Sprintf("No salary increase percentages available for rating %d", rating)
	}
	return fmt.Sprintf("Maximum allowed salary increase for rating %d: %d%%", rating, best)
}

func analyzeEmployeeEligibility(sctx *hrctx.SessionContext) string {
	u := sctx.User
	rating := u.EmployeeRating

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Eligibility Analysis for %s %s (Rating: %d/100):\n\n", u.FirstName, u.LastName, rating)

	if rating >= minRatingForRaise {
		fmt.Fprintf(&b, "✅ Eligible for salary increases up to %d%%\n", rating/10*5)
	} else {
		fmt.Fprintf(&b, "❌ Not eligible for salary increases (minimum rating: %d)\n", minRatingForRaise)
	}

	b.WriteString("✅ Eligible for vacation requests\n")

	switch {
	case rating >= 90:
		b.WriteString("⭐ Excellent performance - eligible for all benefits\n")
	case rating >= 80:
		b.WriteString("👍 Good performance - eligible for most benefits\n")
	case rating >= minRatingForRaise:
		b.WriteString("📈 Satisfactory performance - eligible for basic benefits\n")
	default:
		b.WriteString("📉 Below expectations - limited benefits available\n")
	}

	return b.String()
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
