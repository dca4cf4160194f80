package reviewer

import "errors"

var (
	ErrEmptyPool = errors.New("reviewer pool is empty")
)
