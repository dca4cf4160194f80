package notify

import "context"

// Notifier announces merged pull requests to chat.
type Notifier interface {
	// NotifyMerged schedules the announcement and returns immediately.
	// Failures are logged, never returned.
	NotifyMerged(ctx context.Context, pr MergedPR)

	// Wait blocks until every scheduled announcement has finished.
	Wait()
}

// Sink is a chat destination.
type Sink interface {
	Name() string
	Post(ctx context.Context, text string) error
}
