package automation

import "errors"

var (
	ErrPayloadMismatch = errors.New("payload does not match event type")
)
