package model

import "time"

// EventType is the value of the X-GitHub-Event header.
type EventType string

const (
	EventIssues       EventType = "issues"
	EventPullRequest  EventType = "pull_request"
	EventIssueComment EventType = "issue_comment"
	EventUnrecognized EventType = "unrecognized"
)

// Actions the dispatcher reacts to.
const (
	ActionOpened  = "opened"
	ActionClosed  = "closed"
	ActionCreated = "created"
)

// ParseEventType classifies a delivery by its event header alone.
func ParseEventType(header string) EventType {
	switch EventType(header) {
	case EventIssues, EventPullRequest, EventIssueComment:
		return EventType(header)
	default:
		return EventUnrecognized
	}
}

// EventEnvelope is a classified, decoded delivery.
// Payload is one of *IssuesPayload, *PullRequestPayload, *IssueCommentPayload,
// or nil when the event type is unrecognized.
type EventEnvelope struct {
	DeliveryID string
	EventType  EventType
	RawType    string
	Action     string
	Payload    any
	ReceivedAt time.Time
}

// Issues returns the payload of an issues event.
func (e EventEnvelope) Issues() (*IssuesPayload, bool) {
	p, ok := e.Payload.(*IssuesPayload)
	return p, ok && p != nil
}

// PullRequest returns the payload of a pull_request event.
func (e EventEnvelope) PullRequest() (*PullRequestPayload, bool) {
	p, ok := e.Payload.(*PullRequestPayload)
	return p, ok && p != nil
}

// IssueComment returns the payload of an issue_comment event.
func (e EventEnvelope) IssueComment() (*IssueCommentPayload, bool) {
	p, ok := e.Payload.(*IssueCommentPayload)
	return p, ok && p != nil
}
