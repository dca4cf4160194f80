package github

import "context"

// IGitHub is the repository client used by the webhook handlers and the CLI.
// Every call targets the owner/repo the client was built for.
// Implementations are safe for concurrent use.
type IGitHub interface {
	// ListOpenIssues returns open issues sorted by last update, newest first.
	// Pull requests are excluded.
	ListOpenIssues(ctx context.Context, opts ListIssuesOptions) ([]Issue, error)

	// ListOpenPRs returns open pull requests.
	ListOpenPRs(ctx context.Context) ([]PullRequest, error)

	// AssignReviewers requests review on a pull request.
	AssignReviewers(ctx context.Context, prNumber int, usernames []string) error

	// AddLabel adds a label to an issue or pull request.
	AddLabel(ctx context.Context, number int, label string) error

	// AssignIssue adds an assignee to an issue or pull request.
	AssignIssue(ctx context.Context, issueNumber int, username string) error

	// CreateIssue opens a new issue.
	CreateIssue(ctx context.Context, input CreateIssueInput) (*Issue, error)

	// Repo returns "owner/repo".
	Repo() string
}

// New creates a new GitHub client with the given configuration
func New(cfg Config) (IGitHub, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGitHubImpl(cfg)
}
