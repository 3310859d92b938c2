package queue

import (
	"log"
	"sync"
)

// maxTargets is how many live targets are kept updated at once.
const maxTargets = 5

// Target is a destination that can display a queue snapshot, typically a
// previously sent Discord message that gets edited in place.
type Target interface {
	// ID identifies the target, so re-registering the same destination
	// replaces it instead of adding a duplicate.
	ID() string
	// Push renders the snapshot to the target.
	Push(snap *Snapshot) error
}

// Registry keeps the most recently registered targets, evicting the oldest
// once the capacity is exceeded.
type Registry struct {
	mu      sync.Mutex
	targets []Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a target. If a target with the same ID is already present
// it is replaced in place; otherwise the target is appended and, past the
// capacity of 5, the oldest target is dropped.
func (r *Registry) Register(t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.targets {
		if existing.ID() == t.ID() {
			r.targets[i] = t
			return
		}
	}

	r.targets = append(r.targets, t)
	if len(r.targets) > maxTargets {
		r.targets = r.targets[len(r.targets)-maxTargets:]
	}
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.targets)
}

// Broadcast pushes the snapshot to every registered target. A failing
// target is logged and skipped; it never prevents the remaining targets
// from being updated.
func (r *Registry) Broadcast(snap *Snapshot) {
	if snap == nil {
		return
	}

	r.mu.Lock()
	targets := make([]Target, len(r.targets))
	copy(targets, r.targets)
	r.mu.Unlock()

	for _, t := range targets {
		if err := t.Push(snap); err != nil {
			log.Printf("Error updating queue target %s: %v", t.ID(), err)
		}
	}
}
