package automation

import (
	"context"
	"fmt"

	"github-workflow-automation/internal/model"
)

// handleIssueOpened assigns the next reviewer in rotation to a new issue.
func (uc *usecase) handleIssueOpened(ctx context.Context, env model.EventEnvelope) (string, error) {
	payload, ok := env.Issues()
	if !ok {
		return "", ErrPayloadMismatch
	}
	number := payload.Issue.Number

	assignee, err := uc.rotator.Next()
	if err != nil {
		return "", err
	}

	if err := uc.gh.AssignIssue(ctx, number, assignee); err != nil {
		return "", err
	}

	uc.l.Infof(ctx, "automation: assigned issue #%d to %s", number, assignee)
	return fmt.Sprintf("assigned issue #%d to %s", number, assignee), nil
}
