package automation

import (
	"context"
	"fmt"

	"github-workflow-automation/internal/model"
)

const (
	DefaultReviewLabel   = "needs-review"
	DefaultAssignCommand = "/assign me"
)

// Config tunes the handlers. Empty fields take the defaults above.
type Config struct {
	ReviewLabel   string
	AssignCommand string
}

// DispatchOutput reports what Dispatch did with a delivery.
type DispatchOutput struct {
	Route   string // "event/action", empty when unrouted
	Handled bool
	Message string
}

// route keys the dispatch table.
type route struct {
	event  model.EventType
	action string
}

func (r route) String() string {
	return fmt.Sprintf("%s/%s", r.event, r.action)
}

// handlerFunc is the uniform handler contract.
type handlerFunc func(ctx context.Context, env model.EventEnvelope) (string, error)
