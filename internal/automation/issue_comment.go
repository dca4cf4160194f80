package automation

import (
	"context"
	"fmt"
	"strings"

	"github-workflow-automation/internal/model"
)

// handleCommentCreated assigns the commenter when the comment contains the assign command.
func (uc *usecase) handleCommentCreated(ctx context.Context, env model.EventEnvelope) (string, error) {
	payload, ok := env.IssueComment()
	if !ok {
		return "", ErrPayloadMismatch
	}
	number := payload.Issue.Number

	if !containsCommand(payload.Comment.Body, uc.cfg.AssignCommand) {
		return "no command", nil
	}

	commenter := payload.Comment.User.Login
	if commenter == "" {
		uc.l.Warnf(ctx, "automation: %q on #%d has no author login, skipping", uc.cfg.AssignCommand, number)
		return "no commenter", nil
	}

	if err := uc.gh.AssignIssue(ctx, number, commenter); err != nil {
		return "", err
	}

	uc.l.Infof(ctx, "automation: %s self-assigned #%d", commenter, number)
	return fmt.Sprintf("assigned #%d to %s", number, commenter), nil
}

// containsCommand is a case-insensitive substring match.
func containsCommand(body, command string) bool {
	return strings.Contains(strings.ToLower(body), strings.ToLower(command))
}
