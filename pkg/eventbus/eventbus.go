// Package eventbus publishes agent lifecycle events to an external HTTP
// topic endpoint. Delivery is best-effort: callers log and drop failures.
package eventbus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// DisabledProject is the sentinel that suppresses publishing entirely.
// With this project id no network call is ever attempted.
const DisabledProject = "disabled"

type Config struct {
	Project string        `split_words:"true" default:"disabled"`
	Topic   string        `split_words:"true" default:"agent-lifecycle"`
	URL     string        `split_words:"true"`
	Token   string        `split_words:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

type Publisher struct {
	baseURL    string
	project    string
	topic      string
	token      string
	httpClient *http.Client
	disabled   bool
}

func NewPublisher(cfg Config) (*Publisher, error) {
	project := strings.TrimSpace(cfg.Project)
	if project == "" || project == DisabledProject {
		return &Publisher{disabled: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("eventbus url is required when publishing is enabled")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid eventbus url: %w", err)
	}

	topic := strings.TrimSpace(cfg.Topic)
	if topic == "" {
		return nil, errors.New("eventbus topic is required when publishing is enabled")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Publisher{
		baseURL: baseURL,
		project: project,
		topic:   topic,
		token:   strings.TrimSpace(cfg.Token),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func MustNewPublisher(cfg Config) *Publisher {
	p, err := NewPublisher(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Disabled reports whether publishing is short-circuited.
func (p *Publisher) Disabled() bool { return p.disabled }

// Publish posts one lifecycle event to the configured topic. A disabled
// publisher returns nil immediately without touching the network.
func (p *Publisher) Publish(ctx context.Context, ev contractx.LifecycleEvent) error {
	if p == nil || p.disabled {
		return nil
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/projects/%s/topics/%s", p.baseURL, p.project, p.topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute publish request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("eventbus http status=%d body=%s", resp.StatusCode, string(body))
	}

	return nil
}
