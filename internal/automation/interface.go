package automation

import (
	"context"

	"github-workflow-automation/internal/model"
)

type UseCase interface {
	// Dispatch routes a classified delivery to its handler.
	// Deliveries without a route are logged and reported as not handled.
	Dispatch(ctx context.Context, env model.EventEnvelope) (DispatchOutput, error)
}

// GitHub is the subset of the repository client the handlers call.
type GitHub interface {
	AssignReviewers(ctx context.Context, prNumber int, usernames []string) error
	AddLabel(ctx context.Context, number int, label string) error
	AssignIssue(ctx context.Context, issueNumber int, username string) error
}
