package summarizer

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	systemPrompt = "You summarize merged pull requests for a team chat channel. Answer with plain text only."

	maxOutputTokens = 256
)

// buildPrompt renders the summary request for one pull request.
func buildPrompt(in Input) string {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		body = "No description provided"
	}

	var sb strings.Builder
	sb.WriteString("Generate a concise summary of what this PR accomplished and its potential impact on the codebase. Keep it simple and under 100 words.\n\n")
	fmt.Fprintf(&sb, "PR Title: %s\n", in.Title)
	fmt.Fprintf(&sb, "PR Description: %s\n", body)
	fmt.Fprintf(&sb, "Files Changed: %s\n", countOrUnknown(in.ChangedFiles))
	fmt.Fprintf(&sb, "Additions: %s\n", countOrUnknown(in.Additions))
	fmt.Fprintf(&sb, "Deletions: %s\n\n", countOrUnknown(in.Deletions))
	sb.WriteString("Please provide a brief, professional summary focusing on the key changes and their impact.")
	return sb.String()
}

func countOrUnknown(n int) string {
	if n <= 0 {
		return "Unknown"
	}
	return strconv.Itoa(n)
}
