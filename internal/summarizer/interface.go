package summarizer

import (
	"context"

	"github-workflow-automation/pkg/llmprovider"
)

// Summarizer turns pull request metadata into a short human summary.
// Every error means "no summary"; callers must not fail on it.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

// Generator is the subset of llmprovider.Manager the summarizer needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
