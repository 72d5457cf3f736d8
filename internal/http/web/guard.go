package web

import "sync"

// reviewGuard tracks review submissions currently in flight, keyed per
// report. A second submit for the same report while the first PATCH is
// pending is rejected instead of producing a duplicate mutation. The first
// request is never cancelled.
type reviewGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func newReviewGuard() *reviewGuard {
	return &reviewGuard{inflight: make(map[string]struct{})}
}

func (g *reviewGuard) begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

func (g *reviewGuard) end(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inflight, key)
}
