package scraper

import "sync"

// Registry enforces exactly-once inclusion per file id within one resolution
// call. It is scoped to the call and never persists across calls.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Admit records id and reports whether this is the first time it was seen.
// Safe for concurrent use by walker workers.
func (r *Registry) Admit(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[id]; ok {
		return false
	}
	r.seen[id] = struct{}{}
	return true
}

// Len returns how many distinct ids have been admitted.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
