package tool

import (
	"fmt"
	"strings"

	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

func userInfo(sctx *hrctx.SessionContext) string {
	u := sctx.User
	return fmt.Sprintf("User: %s %s, Position: %s, Current salary: $%s, Rating: %d/100",
		u.FirstName, u.LastName, u.Position, formatMoney(u.CurrentSalary), u.EmployeeRating)
}

func userBasicInfo(sctx *hrctx.SessionContext) string {
	u := sctx.User
	return fmt.Sprintf("User: %s %s, Position: %s", u.FirstName, u.LastName, u.Position)
}

func userRating(sctx *hrctx.SessionContext) string {
	return fmt.Sprintf("Employee rating: %d/100", sctx.User.EmployeeRating)
}

func employeeSalaryInfo(sctx *hrctx.SessionContext) string {
	u := sctx.User
	return fmt.Sprintf("Employee: %s %s, Current salary: $%s, Rating: %d/100",
		u.FirstName, u.LastName, formatMoney(u.CurrentSalary), u.EmployeeRating)
}

func employeeProfile(sctx *hrctx.SessionContext) string {
	u := sctx.User

	var b strings.Builder
	b.WriteString("👤 Employee Profile:\n")
	fmt.Fprintf(&b, "Name: %s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(&b, "Position: %s\n", u.Position)
	fmt.Fprintf(&b, "Current Salary: $%s\n", formatMoney(u.CurrentSalary))
	fmt.Fprintf(&b, "Employee Rating: %d/100\n\n", u.EmployeeRating)
	fmt.Fprintf(&b, "📅 Available Vacation Dates: %s\n\n", strings.Join(sctx.Policy.VacationDates, ", "))
	fmt.Fprintf(&b, "💰 Available Salary Increase Percentages: %s%%", joinInts(sctx.Policy.RaisePercentages))

	return b.String()
}
