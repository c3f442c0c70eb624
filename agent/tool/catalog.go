package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
)

const (
	ToolGetUserInfo                = "get_user_info"
	ToolGetUserBasicInfo           = "get_user_basic_info"
	ToolGetUserRating              = "get_user_rating"
	ToolGetAvailableVacationDates  = "get_available_vacation_dates"
	ToolCheckVacationRequest       = "check_vacation_request"
	ToolCheckSingleVacationDate    = "check_single_vacation_date"
	ToolGetEmployeeSalaryInfo      = "get_employee_salary_info"
	ToolGetAvailableSalaryRaises   = "get_available_salary_increases"
	ToolCalculateSalaryIncrease    = "calculate_salary_increase"
	ToolGetMaxAllowedRaise         = "get_max_allowed_salary_increase"
	ToolGetEmployeeProfile         = "get_employee_profile"
	ToolAnalyzeEmployeeEligibility = "analyze_employee_eligibility"
)

// Executor runs one tool call against a read-only session context. Business
// rejections (unavailable date, bad percentage, low rating) come back in
// Output; Error is reserved for malformed calls. The returned error is only
// for infrastructure faults and is always nil for the built-in tools.
type Executor func(ctx context.Context, sctx *hrctx.SessionContext, tool string, args map[string]any) (contractx.ToolResult, error)

// BuildForAgent returns the tool declarations an agent exposes to the model
// together with an executor that can serve them.
func BuildForAgent(agentType contractx.AgentType) ([]*schema.ToolInfo, Executor) {
	return InfosForAgent(agentType), NewExecutor()
}

// NewExecutor dispatches by tool name over the full HR tool set. Unknown
// tools produce a tool-level error string, not a Go error, so the model can
// recover within the turn.
func NewExecutor() Executor {
	return func(ctx context.Context, sctx *hrctx.SessionContext, tool string, args map[string]any) (contractx.ToolResult, error) {
		if sctx == nil {
			return contractx.ToolResult{Tool: tool, Error: "session context is missing"}, nil
		}

		log.Debug().
			Str("tool", tool).
			Str("session_id", sctx.SessionID).
			Str("user_id", sctx.User.UserID).
			Msg("tool invoked")

		switch tool {
		case ToolGetUserInfo:
			return contractx.ToolResult{Tool: tool, Output: userInfo(sctx)}, nil
		case ToolGetUserBasicInfo:
			return contractx.ToolResult{Tool: tool, Output: userBasicInfo(sctx)}, nil
		case ToolGetUserRating:
			return contractx.ToolResult{Tool: tool, Output: userRating(sctx)}, nil
		case ToolGetAvailableVacationDates:
			return contractx.ToolResult{Tool: tool, Output: availableVacationDates(sctx)}, nil
		case ToolCheckVacationRequest:
			dates, err := stringListArg(args, "requested_dates")
			if err != nil {
				return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
			}
			return contractx.ToolResult{Tool: tool, Output: checkVacationRequest(sctx, dates)}, nil
		case ToolCheckSingleVacationDate:
			date, err := stringArg(args, "date")
			if err != nil {
				return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
			}
			return contractx.ToolResult{Tool: tool, Output: checkSingleVacationDate(sctx, date)}, nil
		case ToolGetEmployeeSalaryInfo:
			return contractx.ToolResult{Tool: tool, Output: employeeSalaryInfo(sctx)}, nil
		case ToolGetAvailableSalaryRaises:
			return contractx.ToolResult{Tool: tool, Output: availableSalaryIncreases(sctx)}, nil
		case ToolCalculateSalaryIncrease:
			pct, err := intArg(args, "percentage")
			if err != nil {
				return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
			}
			return contractx.ToolResult{Tool: tool, Output: calculateSalaryIncrease(sctx, pct)}, nil
		case ToolGetMaxAllowedRaise:
			return contractx.ToolResult{Tool: tool, Output: maxAllowedSalaryIncrease(sctx)}, nil
		case ToolGetEmployeeProfile:
			return contractx.ToolResult{Tool: tool, Output: employeeProfile(sctx)}, nil
		case ToolAnalyzeEmployeeEligibility:
			return contractx.ToolResult{Tool: tool, Output: analyzeEmployeeEligibility(sctx)}, nil
		default:
			return contractx.ToolResult{Tool: tool, Error: fmt.Sprintf("tool=%s is not available", tool)}, nil
		}
	}
}

// InfosForAgent declares the fixed tool set each agent may call. The CEO
// additionally receives sub-agent consultation tools from the runtime layer.
func InfosForAgent(agentType contractx.AgentType) []*schema.ToolInfo {
	switch agentType {
	case contractx.AgentTypeOfficeCulture:
		return []*schema.ToolInfo{
			userBasicInfoTool(),
			userInfoTool(),
		}
	case contractx.AgentTypeHR:
		return []*schema.ToolInfo{
			userInfoTool(),
			userBasicInfoTool(),
			userRatingTool(),
			{
				Name: ToolGetAvailableVacationDates,
				Desc: "Get all available vacation dates.",
			},
			{
				Name: ToolCheckVacationRequest,
				Desc: "Check a vacation request for specific dates. Returns approved and unavailable dates plus alternatives.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"requested_dates": {
						Type:     schema.Array,
						Desc:     "Requested dates in YYYY-MM-DD format",
						ElemInfo: &schema.ParameterInfo{Type: schema.String},
						Required: true,
					},
				}),
			},
			{
				Name: ToolCheckSingleVacationDate,
				Desc: "Check whether a single vacation date is available. Date must be YYYY-MM-DD.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"date": {Type: schema.String, Desc: "Date in YYYY-MM-DD format", Required: true},
				}),
			},
			employeeProfileTool(),
			eligibilityTool(),
		}
	case contractx.AgentTypePayroll:
		return []*schema.ToolInfo{
			userInfoTool(),
			userBasicInfoTool(),
			userRatingTool(),
			{
				Name: ToolGetEmployeeSalaryInfo,
				Desc: "Get employee salary and rating information.",
			},
			{
				Name: ToolGetAvailableSalaryRaises,
				Desc: "Get available salary increase percentages.",
			},
			{
				Name: ToolCalculateSalaryIncrease,
				Desc: "Calculate a salary increase by the given percentage, including rating-based eligibility.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"percentage": {Type: schema.Integer, Desc: "Requested increase percentage", Required: true},
				}),
			},
			{
				Name: ToolGetMaxAllowedRaise,
				Desc: "Get the maximum allowed salary increase for the employee's rating.",
			},
			employeeProfileTool(),
			eligibilityTool(),
		}
	case contractx.AgentTypeCEO:
		return []*schema.ToolInfo{
			userInfoTool(),
			userBasicInfoTool(),
			employeeProfileTool(),
			eligibilityTool(),
		}
	default:
		return nil
	}
}

func userInfoTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetUserInfo,
		Desc: "Get comprehensive user information (name, position, salary, rating).",
	}
}

func userBasicInfoTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetUserBasicInfo,
		Desc: "Get basic user information (name and position only).",
	}
}

func userRatingTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetUserRating,
		Desc: "Get the employee rating out of 100.",
	}
}

func employeeProfileTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolGetEmployeeProfile,
		Desc: "Get the complete employee profile including policy reference data.",
	}
}

func eligibilityTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolAnalyzeEmployeeEligibility,
		Desc: "Analyze employee eligibility for salary increases, vacations, and benefits based on rating.",
	}
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}

func stringListArg(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must contain only strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}

func intArg(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}
