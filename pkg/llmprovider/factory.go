package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github-workflow-automation/config"
	"github-workflow-automation/pkg/deepseek"
	"github-workflow-automation/pkg/gemini"
	"github-workflow-automation/pkg/log"
	"github-workflow-automation/pkg/qwen"
)

// InitializeProviders builds the enabled providers in ascending priority.
// A provider that fails to build is reported through l and skipped; the call
// fails only when none remain.
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm config is nil")
	}
	if l == nil {
		l = log.NewNop()
	}
	ctx := context.Background()

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var failed []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			failed = append(failed, msg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers initialized: %s", strings.Join(failed, "; "))
	}
	if len(failed) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: continuing with %d of %d provider(s)", len(providers), len(enabled))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient(cfg.Timeout),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient(cfg.Timeout),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient(cfg.Timeout),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// httpClient returns a client with the provider timeout, or nil to use the client default.
func httpClient(timeout string) *http.Client {
	if timeout == "" {
		return nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil
	}
	return &http.Client{Timeout: d}
}

// NewManagerConfig converts the string durations of config.LLMConfig.
// Unparseable durations fall back to zero, which disables that limit.
func NewManagerConfig(cfg *config.LLMConfig) *Config {
	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   attempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
