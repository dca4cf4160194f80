package reviewer

// Rotator hands out reviewers in round-robin order.
// Implementations are safe for concurrent use.
type Rotator interface {
	// Next returns the reviewer at the cursor and advances it.
	Next() (string, error)
	// Pool returns a copy of the ordered candidates.
	Pool() []string
}
