package notify

import (
	"context"

	"github-workflow-automation/internal/summarizer"
)

func (n *notifier) NotifyMerged(ctx context.Context, pr MergedPR) {
	if len(n.sinks) == 0 {
		n.l.Infof(ctx, "notify: no chat sink configured, skipping announcement for PR #%d", pr.Number)
		return
	}

	// Detach from the request so the response to GitHub is not held up,
	// keeping ctx values such as the delivery id for logging.
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer cancel()
		n.announce(bg, pr)
	}()
}

func (n *notifier) Wait() {
	n.wg.Wait()
}

func (n *notifier) announce(ctx context.Context, pr MergedPR) {
	summary := n.summarize(ctx, pr)
	text := FormatMerged(pr, summary)

	for _, sink := range n.sinks {
		if err := sink.Post(ctx, text); err != nil {
			n.l.Errorf(ctx, "notify: %s post for PR #%d failed: %v", sink.Name(), pr.Number, err)
			continue
		}
		n.l.Infof(ctx, "notify: announced PR #%d on %s", pr.Number, sink.Name())
	}
}

func (n *notifier) summarize(ctx context.Context, pr MergedPR) string {
	if n.summarizer == nil {
		return ""
	}

	summary, err := n.summarizer.Summarize(ctx, summarizer.Input{
		Title:        pr.Title,
		Body:         pr.Body,
		ChangedFiles: pr.ChangedFiles,
		Additions:    pr.Additions,
		Deletions:    pr.Deletions,
	})
	if err != nil {
		n.l.Warnf(ctx, "notify: no summary for PR #%d: %v", pr.Number, err)
		return ""
	}
	return summary
}
