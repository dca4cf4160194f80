package notify

import (
	"sync"
	"time"

	"github-workflow-automation/internal/summarizer"
	pkgLog "github-workflow-automation/pkg/log"
)

type notifier struct {
	sinks      []Sink
	summarizer summarizer.Summarizer
	timeout    time.Duration
	l          pkgLog.Logger
	wg         sync.WaitGroup
}

// New creates a Notifier. Nil sinks are skipped; a nil Summarizer disables summaries.
func New(cfg Config) Notifier {
	n := &notifier{
		summarizer: cfg.Summarizer,
		timeout:    cfg.Timeout,
		l:          cfg.Logger,
	}
	if n.timeout <= 0 {
		n.timeout = DefaultTimeout
	}
	if n.l == nil {
		n.l = pkgLog.NewNop()
	}
	for _, s := range cfg.Sinks {
		if s != nil {
			n.sinks = append(n.sinks, s)
		}
	}
	return n
}
