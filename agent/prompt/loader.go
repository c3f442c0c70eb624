package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/router.txt
	routerRaw string

	//go:embed template/office_culture.txt
	officeCultureRaw string

	//go:embed template/ceo.txt
	ceoRaw string

	//go:embed template/hr.txt
	hrRaw string

	//go:embed template/payroll.txt
	payrollRaw string

	//go:embed template/guardrail.txt
	guardrailRaw string
)

// PromptSet holds loaded instruction content per agent.
type PromptSet struct {
	Router        string
	OfficeCulture string
	CEO           string
	HR            string
	Payroll       string
	Guardrail     string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// Safe to call concurrently; the embed is compile-time.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Router:        strings.TrimSpace(routerRaw),
		OfficeCulture: strings.TrimSpace(officeCultureRaw),
		CEO:           strings.TrimSpace(ceoRaw),
		HR:            strings.TrimSpace(hrRaw),
		Payroll:       strings.TrimSpace(payrollRaw),
		Guardrail:     strings.TrimSpace(guardrailRaw),
	}
}
