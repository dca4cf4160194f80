package reviewer

import (
	"strings"
	"sync"
)

type roundRobin struct {
	mu     sync.Mutex
	pool   []string
	cursor int
}

// New builds a round-robin Rotator over pool. Blank names are dropped,
// order is kept, and the caller's slice is copied.
func New(pool []string) (Rotator, error) {
	cleaned := make([]string, 0, len(pool))
	for _, name := range pool {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyPool
	}
	return &roundRobin{pool: cleaned}, nil
}
