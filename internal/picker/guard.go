package picker

import "sync/atomic"

// Guard suppresses edit handling while the controller writes derived values
// back to the display, so those writes are not mistaken for user edits.
type Guard struct {
	active atomic.Bool
}

// Active reports whether display writes are in progress.
func (g *Guard) Active() bool {
	return g.active.Load()
}

// Do runs fn with the guard held. The guard is released when fn returns or
// panics. Nested calls leave the outer hold in place.
func (g *Guard) Do(fn func()) {
	if !g.active.CompareAndSwap(false, true) {
		fn()
		return
	}
	defer g.active.Store(false)
	fn()
}
