package github

import "time"

const (
	// DefaultPerPage is the page size used for list calls
	DefaultPerPage = 100

	// DefaultStaleAfter is how long an issue may go without updates before it is stale
	DefaultStaleAfter = 30 * 24 * time.Hour

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
