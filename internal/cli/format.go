package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github-workflow-automation/pkg/github"
)

const (
	titleWidth  = 60
	authorWidth = 16
	dateLayout  = "2006-01-02"
)

// PadRight pads str with spaces up to width display columns.
func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

func truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "...")
}

func printIssues(w io.Writer, repo string, issues []github.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(w, "No open issues in %s\n", repo)
		return
	}

	fmt.Fprintf(w, "%d open issue(s) in %s\n\n", len(issues), repo)
	for _, is := range issues {
		labels := ""
		if len(is.Labels) > 0 {
			labels = "[" + strings.Join(is.Labels, ", ") + "]"
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			PadRight(fmt.Sprintf("#%d", is.Number), 7),
			PadRight(truncate(is.Title, titleWidth), titleWidth),
			PadRight(is.Author, authorWidth),
			PadRight(formatDate(is.UpdatedAt), 10),
			labels,
		)
	}
}

func printPRs(w io.Writer, repo string, prs []github.PullRequest) {
	if len(prs) == 0 {
		fmt.Fprintf(w, "No open pull requests in %s\n", repo)
		return
	}

	fmt.Fprintf(w, "%d open pull request(s) in %s\n\n", len(prs), repo)
	for _, pr := range prs {
		state := pr.State
		if pr.Draft {
			state += " (Draft)"
		}
		reviewers := "-"
		if len(pr.Reviewers) > 0 {
			reviewers = strings.Join(pr.Reviewers, ", ")
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			PadRight(fmt.Sprintf("#%d", pr.Number), 7),
			PadRight(truncate(pr.Title, titleWidth), titleWidth),
			PadRight(pr.Author, authorWidth),
			PadRight(state, 14),
			reviewers,
		)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
