package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github-workflow-automation/pkg/github"
)

func (c *CLI) createIssueCmd() *cobra.Command {
	var (
		title  string
		body   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "create-issue",
		Short: "Create a new issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			gh, err := c.client()
			if err != nil {
				return err
			}

			issue, err := gh.CreateIssue(cmd.Context(), github.CreateIssueInput{
				Title:  title,
				Body:   body,
				Labels: cleanList(labels),
			})
			if err != nil {
				return fmt.Errorf("create issue: %w", err)
			}

			fmt.Fprintf(c.out, "Created issue #%d: %s\n", issue.Number, issue.URL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "issue title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "issue body")
	cmd.Flags().StringSliceVarP(&labels, "labels", "l", nil, "comma-separated labels")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *CLI) listIssuesCmd() *cobra.Command {
	var (
		labels []string
		stale  bool
	)

	cmd := &cobra.Command{
		Use:   "list-issues",
		Short: "List open issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			gh, err := c.client()
			if err != nil {
				return err
			}

			issues, err := gh.ListOpenIssues(cmd.Context(), github.ListIssuesOptions{
				Labels:     cleanList(labels),
				StaleOnly:  stale,
				StaleAfter: c.cfg.Issues.StaleAfter(),
			})
			if err != nil {
				return fmt.Errorf("list issues: %w", err)
			}

			printIssues(c.out, gh.Repo(), issues)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&labels, "labels", "l", nil, "only issues carrying all of these labels")
	cmd.Flags().BoolVarP(&stale, "stale", "s", false, "only issues without activity for issues.stale_after_days")
	return cmd
}

func (c *CLI) listPRsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-prs",
		Short: "List open pull requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			gh, err := c.client()
			if err != nil {
				return err
			}

			prs, err := gh.ListOpenPRs(cmd.Context())
			if err != nil {
				return fmt.Errorf("list pull requests: %w", err)
			}

			printPRs(c.out, gh.Repo(), prs)
			return nil
		},
	}
}

func (c *CLI) assignReviewersCmd() *cobra.Command {
	var (
		number    int
		reviewers []string
	)

	cmd := &cobra.Command{
		Use:   "assign-reviewers",
		Short: "Request review on a pull request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if number <= 0 {
				return fmt.Errorf("invalid pull request number %d", number)
			}
			users := cleanList(reviewers)
			if len(users) == 0 {
				return fmt.Errorf("at least one reviewer is required")
			}

			gh, err := c.client()
			if err != nil {
				return err
			}

			if err := gh.AssignReviewers(cmd.Context(), number, users); err != nil {
				return fmt.Errorf("assign reviewers: %w", err)
			}

			fmt.Fprintf(c.out, "Requested review from %s on #%d\n", strings.Join(users, ", "), number)
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "pr", "p", 0, "pull request number")
	cmd.Flags().StringSliceVarP(&reviewers, "reviewers", "r", nil, "comma-separated GitHub usernames")
	_ = cmd.MarkFlagRequired("pr")
	_ = cmd.MarkFlagRequired("reviewers")
	return cmd
}

// cleanList trims entries and drops blanks.
func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
