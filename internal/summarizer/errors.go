package summarizer

import "errors"

var (
	ErrUnavailable  = errors.New("summarizer unavailable")
	ErrEmptySummary = errors.New("model returned an empty summary")
)
