package gemini

import (
	"context"
	"time"
)

// Defaults applied by Config when a field is left empty.
const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// IGemini is the generateContent client used for merge summaries.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client that can be shared across goroutines.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
