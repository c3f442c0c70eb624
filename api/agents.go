package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// agentDirectory is static metadata in display order. Keys are the short
// names the detail endpoint accepts.
var agentDirectory = []struct {
	key  string
	info contractx.AgentInfo
}{
	{
		key: "route",
		info: contractx.AgentInfo{
			Name:         "Route Agent",
			Description:  "Routes requests between agents. Determines the request type and forwards it to the matching agent.",
			Capabilities: []string{"request_routing", "agent_selection", "context_analysis"},
			Status:       "active",
		},
	},
	{
		key: "office_culture",
		info: contractx.AgentInfo{
			Name:         "Office Culture Agent",
			Description:  "Answers questions about corporate culture, office life, and general company topics.",
			Capabilities: []string{"office_culture", "company_info", "general_questions"},
			Status:       "active",
		},
	},
	{
		key: "ceo",
		info: contractx.AgentInfo{
			Name:         "CEO Agent",
			Description:  "Executive approver for vacation requests, raises, business trips, and other decisions.",
			Capabilities: []string{"approval_requests", "vacation_approval", "salary_decisions", "business_trips"},
			Status:       "active",
		},
	},
	{
		key: "hr",
		info: contractx.AgentInfo{
			Name:         "HR Agent",
			Description:  "HR manager for personnel matters and employee information.",
			Capabilities: []string{"employee_info", "hr_policies", "recruitment"},
			Status:       "active",
		},
	},
	{
		key: "payroll",
		info: contractx.AgentInfo{
			Name:         "Payroll Agent",
			Description:  "Handles salary, financial calculations, and reports.",
			Capabilities: []string{"salary_calculations", "financial_reports", "payroll_management"},
			Status:       "active",
		},
	},
}

type agentListResponse struct {
	Agents []contractx.AgentInfo `json:"agents"`
}

type agentDetailResponse struct {
	Agent contractx.AgentInfo `json:"agent"`
}

func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents := make([]contractx.AgentInfo, 0, len(agentDirectory))
	for _, entry := range agentDirectory {
		agents = append(agents, entry.info)
	}
	JSON(w, http.StatusOK, agentListResponse{Agents: agents})
}

func (h *Handler) GetAgent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "agentName")
	key := strings.ToLower(strings.TrimSpace(name))

	for _, entry := range agentDirectory {
		if entry.key == key {
			JSON(w, http.StatusOK, agentDetailResponse{Agent: entry.info})
			return
		}
	}

	Error(w, http.StatusNotFound, fmt.Sprintf("Agent '%s' not found", name))
}
