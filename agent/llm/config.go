package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	openrouterx "github.com/tanpawarit/Workmate-HR-Multi-Agent/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	RouterModel  string `envconfig:"ROUTER_MODEL" split_words:"true"`
	CultureModel string `envconfig:"CULTURE_MODEL" split_words:"true"`
	HRModel      string `envconfig:"HR_MODEL" split_words:"true"`
	PayrollModel string `envconfig:"PAYROLL_MODEL" split_words:"true"`
	CEOModel     string `envconfig:"CEO_MODEL" split_words:"true"`

	// GuardrailModel selects the model for the inbound-message screen.
	// Empty disables the guardrail entirely.
	GuardrailModel string `envconfig:"GUARDRAIL_MODEL" split_words:"true"`

	RouterTemperature  float32 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"-1"`
	CultureTemperature float32 `envconfig:"CULTURE_TEMPERATURE" split_words:"true" default:"-1"`
	HRTemperature      float32 `envconfig:"HR_TEMPERATURE" split_words:"true" default:"-1"`
	PayrollTemperature float32 `envconfig:"PAYROLL_TEMPERATURE" split_words:"true" default:"-1"`
	CEOTemperature     float32 `envconfig:"CEO_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: model provider api key is required", contractx.ErrConfiguration)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrConfiguration)
	}
	return nil
}

// OpenRouterFor resolves the model configuration for one agent, falling back
// to the shared defaults where no per-agent override is set.
func (c Config) OpenRouterFor(agentType contractx.AgentType) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeRouter:
		if v := strings.TrimSpace(c.RouterModel); v != "" {
			modelName = v
		}
		if c.RouterTemperature >= 0 {
			temp = c.RouterTemperature
		}
	case contractx.AgentTypeOfficeCulture:
		if v := strings.TrimSpace(c.CultureModel); v != "" {
			modelName = v
		}
		if c.CultureTemperature >= 0 {
			temp = c.CultureTemperature
		}
	case contractx.AgentTypeHR:
		if v := strings.TrimSpace(c.HRModel); v != "" {
			modelName = v
		}
		if c.HRTemperature >= 0 {
			temp = c.HRTemperature
		}
	case contractx.AgentTypePayroll:
		if v := strings.TrimSpace(c.PayrollModel); v != "" {
			modelName = v
		}
		if c.PayrollTemperature >= 0 {
			temp = c.PayrollTemperature
		}
	case contractx.AgentTypeCEO:
		if v := strings.TrimSpace(c.CEOModel); v != "" {
			modelName = v
		}
		if c.CEOTemperature >= 0 {
			temp = c.CEOTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
