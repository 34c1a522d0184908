// Package keys tracks page-global keyboard listeners. A listener is held
// only between Bind and the Release it returns, so callers can scope a
// binding to exactly the time they need it.
package keys

import (
	"sort"
	"sync"
)

// Escape is the key name dispatched when the user presses Esc.
const Escape = "Escape"

// Binding describes one live listener. Owner names the component that
// acquired it.
type Binding struct {
	Key   string
	Owner string

	id uint64
	fn func()
}

// Release drops a binding. Calling it more than once is a no-op.
type Release func()

// Registry holds the live bindings of one page instance.
type Registry struct {
	mu       sync.Mutex
	next     uint64
	bindings map[uint64]Binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[uint64]Binding)}
}

// Bind registers fn for key and returns the matching Release.
func (r *Registry) Bind(key, owner string, fn func()) Release {
	r.mu.Lock()
	r.next++
	id := r.next
	r.bindings[id] = Binding{Key: key, Owner: owner, id: id, fn: fn}
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.bindings, id)
			r.mu.Unlock()
		})
	}
}

// Dispatch invokes every handler bound to key, oldest first, and returns
// how many ran. Handlers may release their own binding.
func (r *Registry) Dispatch(key string) int {
	targets := r.matching(key)
	for _, b := range targets {
		b.fn()
	}
	return len(targets)
}

// Active returns the live bindings in bind order.
func (r *Registry) Active() []Binding {
	return r.matching("")
}

// Len returns the number of live bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}

// matching snapshots the bindings for key (all keys when key is empty) so
// handlers run without the lock held.
func (r *Registry) matching(key string) []Binding {
	r.mu.Lock()
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if key == "" || b.Key == key {
			out = append(out, b)
		}
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
