package notify

import (
	"time"

	"github-workflow-automation/internal/summarizer"
	pkgLog "github-workflow-automation/pkg/log"
)

// DefaultTimeout bounds one announcement, summary included.
const DefaultTimeout = 2 * time.Minute

// MergedPR is what an announcement needs to know about the pull request.
type MergedPR struct {
	Number       int
	Title        string
	Body         string
	Author       string
	URL          string
	ChangedFiles int
	Additions    int
	Deletions    int
}

// Config is the dependency bag passed to New().
type Config struct {
	Sinks      []Sink
	Summarizer summarizer.Summarizer
	Timeout    time.Duration
	Logger     pkgLog.Logger
}
