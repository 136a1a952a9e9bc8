package test

import "sync"

// SequenceGenerator hands out the configured ids in order, then repeats the last one.
type SequenceGenerator struct {
	IDs []string

	mu   sync.Mutex
	next int
}

// NextID returns the next configured id.
func (g *SequenceGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.IDs) == 0 {
		return ""
	}
	if g.next >= len(g.IDs) {
		return g.IDs[len(g.IDs)-1]
	}
	id := g.IDs[g.next]
	g.next++
	return id
}
