package summarizer

import (
	pkgLog "github-workflow-automation/pkg/log"
)

type llmSummarizer struct {
	gen Generator
	l   pkgLog.Logger
}

// New returns a Summarizer backed by gen. A nil gen yields a Summarizer
// that always reports ErrUnavailable, so callers need no nil checks.
func New(gen Generator, l pkgLog.Logger) Summarizer {
	return &llmSummarizer{gen: gen, l: l}
}
