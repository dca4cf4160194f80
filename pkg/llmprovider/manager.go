package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github-workflow-automation/pkg/log"
)

// Manager tries providers in priority order, retrying each before moving on.
// It is safe for concurrent use; it holds no per-call state.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes retry and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration // multiplied by the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain, 0 disables
}

// NewManager creates a Manager. A nil config means one attempt on the first
// provider only; a nil logger discards output.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{
		providers: providers,
		config:    &cfg,
		logger:    logger,
	}
}

func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: stopped after %d provider(s): %v", ErrAllProvidersFailed, i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry backs off linearly between attempts on one provider.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error
	attempts := 0

	for attempts < m.config.RetryAttempts {
		if attempts > 0 {
			select {
			case <-time.After(time.Duration(attempts) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: ctx.Err()}
			}
		}
		attempts++

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: lastErr}
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	for _, msg := range req.Messages {
		for _, p := range msg.Parts {
			if p.Text != "" {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: no prompt text", ErrInvalidRequest)
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	if resp.Usage == nil {
		resp.Usage = &Usage{}
	}
	m.logger.Info(ctx, "llm generation succeeded",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "llm generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
