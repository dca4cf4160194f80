package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github-workflow-automation/pkg/llmprovider"
)

func (s *llmSummarizer) Summarize(ctx context.Context, input Input) (string, error) {
	if s.gen == nil {
		return "", ErrUnavailable
	}

	req := llmprovider.UserText(systemPrompt, buildPrompt(input))
	req.MaxTokens = maxOutputTokens

	resp, err := s.gen.GenerateContent(ctx, req)
	if err != nil {
		s.l.Warnf(ctx, "summarizer: generation failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", ErrEmptySummary
	}
	return summary, nil
}
