package reviewer

// Next returns pool[cursor] and moves the cursor to (cursor+1) mod len(pool).
func (r *roundRobin) Next() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pool) == 0 {
		return "", ErrEmptyPool
	}

	name := r.pool[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.pool)
	return name, nil
}

func (r *roundRobin) Pool() []string {
	out := make([]string, len(r.pool))
	copy(out, r.pool)
	return out
}
