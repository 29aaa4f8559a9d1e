// Package input models the pointer surface the host hands the cores:
// screen-space events and a best-effort capture that never fails on
// release.
package input

type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
	Leave
)

// Ended reports whether this event terminates an active drag.
// Up, Cancel and Leave are treated identically.
func (k Kind) Ended() bool { return k == Up || k == Cancel || k == Leave }

type Event struct {
	Kind      Kind
	PointerID int
	X, Y      float64 // pixels, top-left origin
}

// Capture tracks which pointer, if any, the core currently holds.
// Release of a pointer that is not held is a no-op rather than an
// error: browsers drop captures on their own and the core must not
// care.
type Capture struct {
	held bool
	id   int
}

func (c *Capture) Acquire(id int) {
	c.held = true
	c.id = id
}

// ReleaseIfHeld releases the capture when the given pointer holds it
// and reports whether anything was released.
func (c *Capture) ReleaseIfHeld(id int) bool {
	if !c.held || c.id != id {
		return false
	}
	c.held = false
	return true
}

func (c *Capture) Held() bool { return c.held }
