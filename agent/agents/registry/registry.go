// Package registry assembles the HR assistant's agents: the routing
// classifier, the office-culture, HR, and payroll agents, and the CEO
// coordinator that exposes payroll and HR as consultation tools.
package registry

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	llmx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/llm"
	promptx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/prompt"
	runtimex "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/runtime"
	toolx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/tool"
)

const (
	AgentNameRouter        = "Route Agent"
	AgentNameOfficeCulture = "Office Culture Agent"
	AgentNameCEO           = "CEO Agent"
	AgentNameHR            = "HR Agent"
	AgentNamePayroll       = "Payroll Agent"

	ToolPayrollConsultation = "payroll_consultation"
	ToolHRConsultation      = "hr_consultation"
)

type registryImpl struct {
	classifier contractx.Classifier
	culture    contractx.Agent
	ceo        contractx.Agent
	hr         contractx.Agent
	payroll    contractx.Agent
}

func (r *registryImpl) Classifier() contractx.Classifier { return r.classifier }

func (r *registryImpl) OfficeCulture() contractx.Agent { return r.culture }

func (r *registryImpl) CEO() contractx.Agent { return r.ceo }

func (r *registryImpl) HR() contractx.Agent { return r.hr }

func (r *registryImpl) Payroll() contractx.Agent { return r.payroll }

// New builds every agent once at process start. Agents are immutable
// afterwards; there is no per-request agent state.
func New(ctx context.Context, cfg llmx.Config, hooks contractx.Hooks) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()
	executor := toolx.NewExecutor()

	routerModelCfg := cfg.OpenRouterFor(contractx.AgentTypeRouter)
	routerModel, err := routerModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create router model: %v", contractx.ErrModelInvoke, err)
	}
	classifier, err := newClassifier(ctx, routerModel, prompts.Router)
	if err != nil {
		return nil, err
	}

	cultureModelCfg := cfg.OpenRouterFor(contractx.AgentTypeOfficeCulture)
	cultureModel, err := cultureModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create office-culture model: %v", contractx.ErrModelInvoke, err)
	}
	culture, err := runtimex.NewLoopAgent(
		AgentNameOfficeCulture,
		contractx.AgentTypeOfficeCulture,
		prompts.OfficeCulture,
		cultureModel,
		toolx.InfosForAgent(contractx.AgentTypeOfficeCulture),
		executor,
		hooks,
		runtimex.Options{},
	)
	if err != nil {
		return nil, err
	}

	hrModelCfg := cfg.OpenRouterFor(contractx.AgentTypeHR)
	hrModel, err := hrModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create hr model: %v", contractx.ErrModelInvoke, err)
	}
	hr, err := runtimex.NewLoopAgent(
		AgentNameHR,
		contractx.AgentTypeHR,
		prompts.HR,
		hrModel,
		toolx.InfosForAgent(contractx.AgentTypeHR),
		executor,
		hooks,
		runtimex.Options{},
	)
	if err != nil {
		return nil, err
	}

	payrollModelCfg := cfg.OpenRouterFor(contractx.AgentTypePayroll)
	payrollModel, err := payrollModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create payroll model: %v", contractx.ErrModelInvoke, err)
	}
	payroll, err := runtimex.NewLoopAgent(
		AgentNamePayroll,
		contractx.AgentTypePayroll,
		prompts.Payroll,
		payrollModel,
		toolx.InfosForAgent(contractx.AgentTypePayroll),
		executor,
		hooks,
		runtimex.Options{},
	)
	if err != nil {
		return nil, err
	}

	ceoModelCfg := cfg.OpenRouterFor(contractx.AgentTypeCEO)
	ceoModel, err := ceoModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create ceo model: %v", contractx.ErrModelInvoke, err)
	}

	ceoInfos := toolx.InfosForAgent(contractx.AgentTypeCEO)
	ceoInfos = append(ceoInfos,
		runtimex.SubAgentToolInfo(ToolPayrollConsultation,
			"Consult with Payroll department about salary increases, bonuses, and compensation matters"),
		runtimex.SubAgentToolInfo(ToolHRConsultation,
			"Consult with HR department about vacation requests, leave policies, and HR-related matters"),
	)
	ceoExecutor := runtimex.WithSubAgents(executor, map[string]contractx.Agent{
		ToolPayrollConsultation: payroll,
		ToolHRConsultation:      hr,
	})

	// Parallel tool calls stay enabled only here so the CEO can consult
	// both departments within a single turn.
	ceo, err := runtimex.NewLoopAgent(
		AgentNameCEO,
		contractx.AgentTypeCEO,
		prompts.CEO,
		ceoModel,
		ceoInfos,
		ceoExecutor,
		hooks,
		runtimex.Options{ParallelToolCalls: true},
	)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		classifier: classifier,
		culture:    culture,
		ceo:        ceo,
		hr:         hr,
		payroll:    payroll,
	}, nil
}
