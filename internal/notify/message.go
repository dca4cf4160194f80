package notify

import (
	"fmt"
	"strings"
)

// FormatMerged renders the announcement. The summary section is omitted when summary is blank.
func FormatMerged(pr MergedPR, summary string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎉 PR #%d \"%s\" has been merged!\n", pr.Number, pr.Title)
	fmt.Fprintf(&sb, "Author: %s\n", pr.Author)
	fmt.Fprintf(&sb, "URL: %s", pr.URL)

	if summary = strings.TrimSpace(summary); summary != "" {
		sb.WriteString("\n\n🤖 AI Summary:\n")
		sb.WriteString(summary)
	}
	return sb.String()
}
