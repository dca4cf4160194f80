package qwen

import (
	"context"
	"time"
)

// Defaults target the international DashScope OpenAI-compatible endpoint.
const (
	DefaultModel   = "qwen-plus"
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultTimeout = 30 * time.Second
)

// IQwen is the chat completions client used for merge summaries.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client that can be shared across goroutines.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
