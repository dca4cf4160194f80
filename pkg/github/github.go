package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v71/github"
	"golang.org/x/oauth2"
)

// newGitHubImpl creates a new GitHub implementation
func newGitHubImpl(cfg Config) (*githubImpl, error) {
	httpClient, err := authenticatedClient(cfg)
	if err != nil {
		return nil, err
	}

	client := gogithub.NewClient(httpClient)
	if cfg.BaseURL != "" {
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("github: invalid base url %q: %w", cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	return &githubImpl{
		client: client,
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		now:    time.Now,
	}, nil
}

// authenticatedClient wraps the base transport with token or App installation auth.
func authenticatedClient(cfg Config) (*http.Client, error) {
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: DefaultTimeout}
	}

	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		tc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
		tc.Timeout = base.Timeout
		return tc, nil
	}

	tr := base.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	itr, err := ghinstallation.NewKeyFromFile(tr, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("github: failed to load app key: %w", err)
	}
	if cfg.BaseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	return &http.Client{Transport: itr, Timeout: base.Timeout}, nil
}

func (g *githubImpl) Repo() string {
	return g.owner + "/" + g.repo
}

// ListOpenIssues pages through open issues. The issues endpoint also returns
// pull requests, which are dropped here.
func (g *githubImpl) ListOpenIssues(ctx context.Context, opts ListIssuesOptions) ([]Issue, error) {
	listOpts := &gogithub.IssueListByRepoOptions{
		State:       "open",
		Labels:      opts.Labels,
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gogithub.ListOptions{PerPage: DefaultPerPage, Page: 1},
	}

	staleAfter := opts.StaleAfter
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	cutoff := g.now().Add(-staleAfter)

	var issues []Issue
	for {
		page, resp, err := g.client.Issues.ListByRepo(ctx, g.owner, g.repo, listOpts)
		if err != nil {
			return nil, fmt.Errorf("github: list issues: %w", err)
		}

		for _, is := range page {
			if is.IsPullRequest() {
				continue
			}
			issue := toIssue(is)
			if opts.StaleOnly && !issue.UpdatedAt.Before(cutoff) {
				continue
			}
			issues = append(issues, issue)
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return issues, nil
}

func (g *githubImpl) ListOpenPRs(ctx context.Context) ([]PullRequest, error) {
	listOpts := &gogithub.PullRequestListOptions{
		State:       "open",
		ListOptions: gogithub.ListOptions{PerPage: DefaultPerPage, Page: 1},
	}

	var prs []PullRequest
	for {
		page, resp, err := g.client.PullRequests.List(ctx, g.owner, g.repo, listOpts)
		if err != nil {
			return nil, fmt.Errorf("github: list pull requests: %w", err)
		}
		for _, pr := range page {
			prs = append(prs, toPullRequest(pr))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return prs, nil
}

func (g *githubImpl) AssignReviewers(ctx context.Context, prNumber int, usernames []string) error {
	if len(usernames) == 0 {
		return fmt.Errorf("github: no reviewers given for #%d", prNumber)
	}
	_, _, err := g.client.PullRequests.RequestReviewers(ctx, g.owner, g.repo, prNumber, gogithub.ReviewersRequest{
		Reviewers: usernames,
	})
	if err != nil {
		return fmt.Errorf("github: request reviewers on #%d: %w", prNumber, err)
	}
	return nil
}

func (g *githubImpl) AddLabel(ctx context.Context, number int, label string) error {
	_, _, err := g.client.Issues.AddLabelsToIssue(ctx, g.owner, g.repo, number, []string{label})
	if err != nil {
		return fmt.Errorf("github: add label %q to #%d: %w", label, number, err)
	}
	return nil
}

func (g *githubImpl) AssignIssue(ctx context.Context, issueNumber int, username string) error {
	_, _, err := g.client.Issues.AddAssignees(ctx, g.owner, g.repo, issueNumber, []string{username})
	if err != nil {
		return fmt.Errorf("github: assign %s to #%d: %w", username, issueNumber, err)
	}
	return nil
}

func (g *githubImpl) CreateIssue(ctx context.Context, input CreateIssueInput) (*Issue, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("github: issue title is required")
	}

	req := &gogithub.IssueRequest{
		Title: gogithub.Ptr(input.Title),
	}
	if input.Body != "" {
		req.Body = gogithub.Ptr(input.Body)
	}
	if len(input.Labels) > 0 {
		labels := append([]string(nil), input.Labels...)
		req.Labels = &labels
	}

	created, _, err := g.client.Issues.Create(ctx, g.owner, g.repo, req)
	if err != nil {
		return nil, fmt.Errorf("github: create issue: %w", err)
	}

	issue := toIssue(created)
	return &issue, nil
}

func toIssue(is *gogithub.Issue) Issue {
	issue := Issue{
		Number:    is.GetNumber(),
		Title:     is.GetTitle(),
		Body:      is.GetBody(),
		State:     is.GetState(),
		URL:       is.GetHTMLURL(),
		Author:    is.GetUser().GetLogin(),
		CreatedAt: is.GetCreatedAt().Time,
		UpdatedAt: is.GetUpdatedAt().Time,
	}
	for _, l := range is.Labels {
		issue.Labels = append(issue.Labels, l.GetName())
	}
	for _, a := range is.Assignees {
		issue.Assignees = append(issue.Assignees, a.GetLogin())
	}
	return issue
}

func toPullRequest(pr *gogithub.PullRequest) PullRequest {
	out := PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		URL:       pr.GetHTMLURL(),
		Author:    pr.GetUser().GetLogin(),
		Draft:     pr.GetDraft(),
		HeadRef:   pr.GetHead().GetRef(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
	}
	for _, r := range pr.RequestedReviewers {
		out.Reviewers = append(out.Reviewers, r.GetLogin())
	}
	return out
}
