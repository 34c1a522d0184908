// Package overlay implements the dismissible overlay shared by every modal
// on the page.
package overlay

import "github.com/mrbear1024/xgrowth/internal/keys"

// Dismissible is the capability every overlay exposes to its owner.
type Dismissible interface {
	IsOpen() bool
	Open()
	Close()
}

// Target identifies which part of a rendered overlay received a click.
type Target int

const (
	TargetBackdrop Target = iota
	TargetPanel
	TargetCloseControl
)

func (t Target) String() string {
	switch t {
	case TargetBackdrop:
		return "backdrop"
	case TargetPanel:
		return "panel"
	case TargetCloseControl:
		return "close"
	default:
		return "unknown"
	}
}

// Overlay is a two-state (closed/open) machine carrying an optional payload
// while open. While open it holds exactly one Escape binding in its key
// registry; the binding is released whenever it leaves the open state.
type Overlay[T any] struct {
	name    string
	keys    *keys.Registry
	open    bool
	payload T
	release keys.Release
}

var _ Dismissible = (*Overlay[struct{}])(nil)

// New returns a closed overlay. name is used as the owner of its key
// binding.
func New[T any](name string, registry *keys.Registry) *Overlay[T] {
	return &Overlay[T]{name: name, keys: registry}
}

// Name returns the overlay's owner name.
func (o *Overlay[T]) Name() string { return o.name }

// IsOpen reports whether the overlay is in the open state.
func (o *Overlay[T]) IsOpen() bool { return o.open }

// Open opens the overlay with the zero payload, or keeps the current
// payload if it is already open.
func (o *Overlay[T]) Open() {
	if o.open {
		return
	}
	var zero T
	o.OpenWith(zero)
}

// OpenWith opens the overlay carrying p. Opening an open overlay only
// replaces the payload.
func (o *Overlay[T]) OpenWith(p T) {
	o.payload = p
	if o.open {
		return
	}
	o.open = true
	if o.keys != nil {
		o.release = o.keys.Bind(keys.Escape, o.name, o.Close)
	}
}

// Close returns to the closed state and drops the payload. Closing a closed
// overlay is a no-op.
func (o *Overlay[T]) Close() {
	if !o.open {
		return
	}
	o.open = false
	var zero T
	o.payload = zero
	o.releaseKeys()
}

// Payload returns the payload and whether the overlay is open.
func (o *Overlay[T]) Payload() (T, bool) {
	return o.payload, o.open
}

// HandleClick applies a click on part of the rendered overlay and reports
// whether it closed the overlay. Clicks on the panel never propagate to the
// backdrop.
func (o *Overlay[T]) HandleClick(t Target) bool {
	if !o.open {
		return false
	}
	switch t {
	case TargetBackdrop, TargetCloseControl:
		o.Close()
		return true
	default:
		return false
	}
}

// Teardown closes the overlay and releases any listener it still holds.
func (o *Overlay[T]) Teardown() {
	o.Close()
	o.releaseKeys()
}

func (o *Overlay[T]) releaseKeys() {
	if o.release != nil {
		o.release()
		o.release = nil
	}
}
