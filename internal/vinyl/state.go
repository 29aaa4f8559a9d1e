// Package vinyl simulates a disc hanging from the pointer on an
// implied string: clamped planar dragging, velocity-derived swing
// tilt, and a two-phase clearance-then-drop return to the platter.
package vinyl

import "github.com/san-kum/platterlab/internal/geom"

// State is one disc's physics record. It is advanced by value through
// Update; the record survives hand<->platter ownership switches via
// ReAnchor rather than reconstruction.
type State struct {
	Anchor geom.Vec3

	Target     geom.Vec3
	LastTarget geom.Vec3
	Position   geom.Vec3

	PointerWorld geom.Vec3
	AttachOffset geom.Vec3

	SwingTargetX, SwingTargetZ float64
	SwingX, SwingZ             float64

	ReturnTwist       float64
	ReturnTwistTarget float64
	ReturnBaseTwist   float64

	Returning  bool
	ClearedNub bool
}

// NewState places the disc at rest on the given anchor.
func NewState(anchor geom.Vec3) State {
	return State{
		Anchor:     anchor,
		Target:     anchor,
		LastTarget: anchor,
		Position:   anchor,
	}
}

// Grab records where in the disc's frame the pointer attached. The
// offset relaxes toward the hang offset while the drag lasts.
func (s State) Grab(pointerWorld geom.Vec3) State {
	s.PointerWorld = pointerWorld
	s.AttachOffset = s.Position.Sub(pointerWorld)
	return s
}

// ReAnchor switches the point the disc relaxes toward (platter
// spindle vs. held focus point) without resetting motion state.
func (s State) ReAnchor(anchor geom.Vec3) State {
	s.Anchor = anchor
	return s
}

// StartReturn begins the two-phase trip back to the platter.
func (s State) StartReturn(p Params) State {
	s.Returning = true
	s.ClearedNub = false
	switch p.Twist {
	case TwistEaseZero:
		s.ReturnTwistTarget = 0
	default:
		s.ReturnTwistTarget = p.FinalTwist
	}
	return s
}

// Input is the per-frame context the host supplies.
type Input struct {
	DragActive   bool
	PointerWorld geom.Vec3

	// OnTurntable gates the cosmetic wobble.
	OnTurntable bool

	// SpinAngle and UserRotation feed the rendered Y rotation; the
	// physics does not own them.
	SpinAngle    float64
	UserRotation float64
}

// Frame is what Update hands back for rendering and host wiring.
// ReturnedToPlatter is true for exactly the frame the return settles.
type Frame struct {
	ReturnedToPlatter bool
	Position          geom.Vec3
	RotationY         float64
	TiltX, TiltZ      float64
}
