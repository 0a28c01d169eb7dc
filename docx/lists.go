package docx

import "sync"

// ListCounters tracks, per list id, the last ordinal handed out to a
// numbered paragraph. Each paragraph of a list renders as its own
// single-item <ol>; the counters are what make consecutive items continue
// 1, 2, 3 across those separate lists.
//
// The zero value is ready to use. Updates are serialized so paragraphs may
// be rendered from several goroutines without losing increments, although
// the order in which concurrent callers receive ordinals is unspecified.
type ListCounters struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewListCounters returns an empty counter table.
func NewListCounters() *ListCounters {
	return &ListCounters{counts: make(map[string]int)}
}

// Next advances the counter for id and returns the new ordinal. The first
// call for an id returns 1.
func (c *ListCounters) Next(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[id]++
	return c.counts[id]
}

// Value returns the last ordinal assigned for id, or 0 if none was.
func (c *ListCounters) Value(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id]
}

// Len returns the number of list ids seen.
func (c *ListCounters) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts)
}

// Reset forgets every counter, starting a new rendering pass.
func (c *ListCounters) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[string]int)
}

// Snapshot returns a copy of the current counters.
func (c *ListCounters) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.counts))
	for id, n := range c.counts {
		out[id] = n
	}
	return out
}
