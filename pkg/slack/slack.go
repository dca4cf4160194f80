package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 10 * time.Second

// ISlack posts plain text to a Slack incoming webhook.
type ISlack interface {
	PostMessage(ctx context.Context, text string) error
}

// Config holds Slack webhook configuration
type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

type slackImpl struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a new incoming webhook client
func New(cfg Config) (ISlack, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("slack: webhook url is required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &slackImpl{webhookURL: cfg.WebhookURL, httpClient: cfg.HTTPClient}, nil
}

func (s *slackImpl) PostMessage(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	return nil
}
