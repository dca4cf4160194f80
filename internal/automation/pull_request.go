package automation

import (
	"context"
	"fmt"

	"github-workflow-automation/internal/model"
	"github-workflow-automation/internal/notify"
)

// handlePullRequestOpened requests review from the next reviewer, then labels the PR.
// The label is only added once the review request succeeded.
func (uc *usecase) handlePullRequestOpened(ctx context.Context, env model.EventEnvelope) (string, error) {
	payload, ok := env.PullRequest()
	if !ok {
		return "", ErrPayloadMismatch
	}
	number := prNumber(payload)

	reviewer, err := uc.rotator.Next()
	if err != nil {
		return "", err
	}

	if err := uc.gh.AssignReviewers(ctx, number, []string{reviewer}); err != nil {
		return "", err
	}
	if err := uc.gh.AddLabel(ctx, number, uc.cfg.ReviewLabel); err != nil {
		return "", err
	}

	uc.l.Infof(ctx, "automation: requested review from %s on PR #%d and labeled %q", reviewer, number, uc.cfg.ReviewLabel)
	return fmt.Sprintf("requested review from %s on PR #%d", reviewer, number), nil
}

// handlePullRequestClosed announces merged pull requests. Closed without merge is a no-op.
func (uc *usecase) handlePullRequestClosed(ctx context.Context, env model.EventEnvelope) (string, error) {
	payload, ok := env.PullRequest()
	if !ok {
		return "", ErrPayloadMismatch
	}
	pr := payload.PullRequest
	number := prNumber(payload)

	if !pr.Merged {
		uc.l.Infof(ctx, "automation: PR #%d closed without merge", number)
		return fmt.Sprintf("PR #%d closed without merge", number), nil
	}

	if uc.notifier == nil {
		return fmt.Sprintf("PR #%d merged", number), nil
	}

	uc.notifier.NotifyMerged(ctx, notify.MergedPR{
		Number:       number,
		Title:        pr.Title,
		Body:         pr.Body,
		Author:       pr.User.Login,
		URL:          pr.HTMLURL,
		ChangedFiles: pr.ChangedFiles,
		Additions:    pr.Additions,
		Deletions:    pr.Deletions,
	})
	return fmt.Sprintf("PR #%d merged, announcement scheduled", number), nil
}

func prNumber(p *model.PullRequestPayload) int {
	if p.PullRequest.Number != 0 {
		return p.PullRequest.Number
	}
	return p.Number
}
