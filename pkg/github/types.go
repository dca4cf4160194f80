package github

import (
	"fmt"
	"net/http"
	"time"

	gogithub "github.com/google/go-github/v71/github"
)

// Config holds GitHub client configuration.
// Token auth wins over App auth when both are set.
type Config struct {
	Owner string
	Repo  string

	Token string

	AppID          int64
	InstallationID int64
	PrivateKeyPath string

	// BaseURL overrides the REST endpoint (GitHub Enterprise, tests).
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("github: owner and repo are required")
	}
	if c.Token == "" && (c.AppID == 0 || c.InstallationID == 0 || c.PrivateKeyPath == "") {
		return fmt.Errorf("github: a token or app credentials are required")
	}
	return nil
}

// Issue is an open issue as listed or created.
type Issue struct {
	Number    int
	Title     string
	Body      string
	State     string
	URL       string
	Author    string
	Labels    []string
	Assignees []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PullRequest is an open pull request as listed.
type PullRequest struct {
	Number    int
	Title     string
	State     string
	URL       string
	Author    string
	Draft     bool
	HeadRef   string
	Reviewers []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListIssuesOptions filters ListOpenIssues.
type ListIssuesOptions struct {
	Labels []string
	// StaleOnly keeps issues whose last update is older than StaleAfter.
	StaleOnly bool
	// StaleAfter defaults to DefaultStaleAfter.
	StaleAfter time.Duration
}

type CreateIssueInput struct {
	Title  string
	Body   string
	Labels []string
}

// githubImpl is the internal implementation of IGitHub
type githubImpl struct {
	client *gogithub.Client
	owner  string
	repo   string
	now    func() time.Time
}
