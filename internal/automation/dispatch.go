package automation

import (
	"context"
	"fmt"

	"github-workflow-automation/internal/model"
)

// routeTable is the complete set of reactions. Anything not listed is ignored.
func (uc *usecase) routeTable() map[route]handlerFunc {
	return map[route]handlerFunc{
		{model.EventIssues, model.ActionOpened}:        uc.handleIssueOpened,
		{model.EventPullRequest, model.ActionOpened}:   uc.handlePullRequestOpened,
		{model.EventPullRequest, model.ActionClosed}:   uc.handlePullRequestClosed,
		{model.EventIssueComment, model.ActionCreated}: uc.handleCommentCreated,
	}
}

func (uc *usecase) Dispatch(ctx context.Context, env model.EventEnvelope) (DispatchOutput, error) {
	r := route{event: env.EventType, action: env.Action}

	handler, ok := uc.routes[r]
	if !ok {
		event := string(env.EventType)
		if env.EventType == model.EventUnrecognized && env.RawType != "" {
			event = fmt.Sprintf("%s (%s)", env.EventType, env.RawType)
		}
		uc.l.Infof(ctx, "automation: no handler for %s/%s, ignoring", event, env.Action)
		return DispatchOutput{Message: "ignored"}, nil
	}

	uc.l.Infof(ctx, "automation: handling %s", r)
	msg, err := handler(ctx, env)
	if err != nil {
		return DispatchOutput{Route: r.String()}, fmt.Errorf("%s: %w", r, err)
	}

	return DispatchOutput{Route: r.String(), Handled: true, Message: msg}, nil
}
