package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrInvalidRequest        = errors.New("invalid request")
)

// ProviderError records why one provider gave up after its retries.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
