package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"github-workflow-automation/internal/model"
)

// decodeEnvelope classifies a delivery and decodes its payload.
// Unrecognized event types are returned without a payload and never fail.
func decodeEnvelope(eventHeader, deliveryID string, body []byte, now time.Time) (model.EventEnvelope, error) {
	env := model.EventEnvelope{
		DeliveryID: deliveryID,
		EventType:  model.ParseEventType(eventHeader),
		RawType:    eventHeader,
		ReceivedAt: now,
	}

	var err error
	switch env.EventType {
	case model.EventIssues:
		var p model.IssuesPayload
		err = json.Unmarshal(body, &p)
		env.Action, env.Payload = p.Action, &p
	case model.EventPullRequest:
		var p model.PullRequestPayload
		err = json.Unmarshal(body, &p)
		env.Action, env.Payload = p.Action, &p
	case model.EventIssueComment:
		var p model.IssueCommentPayload
		err = json.Unmarshal(body, &p)
		env.Action, env.Payload = p.Action, &p
	default:
		return env, nil
	}

	if err != nil {
		return model.EventEnvelope{}, fmt.Errorf("decode %s payload: %w", eventHeader, err)
	}
	return env, nil
}
