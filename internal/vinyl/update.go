package vinyl

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/san-kum/platterlab/internal/ease"
	"github.com/san-kum/platterlab/internal/geom"
)

// Update advances the disc one frame and reports render values plus
// the one-frame settle pulse. Dragging is planar: the disc moves in
// the x/y plane at the anchor's depth.
func Update(s State, in Input, p Params) (State, Frame) {
	switch {
	case in.DragActive:
		s = stepDrag(s, in, p)
	case s.Returning:
		s = stepReturn(s, p)
	default:
		s = stepSettle(s, p)
	}

	settled := false
	if s.Returning && s.ClearedNub {
		if planarDistance(s.Position, s.Anchor) <= p.SettleEpsilon &&
			math.Abs(s.Position.Y-s.Anchor.Y) <= p.SettleEpsilon {
			s.Returning = false
			s.ClearedNub = false
			s.Target = s.Anchor
			s.Position = s.Anchor
			s.ReturnBaseTwist += s.ReturnTwist
			s.ReturnTwist = 0
			s.ReturnTwistTarget = 0
			settled = true
		}
	}

	// Shared smoothing, every mode.
	s.Position = s.Position.Lerp(s.Target, p.PositionLerp)
	s.SwingX = ease.Lerp(s.SwingX, s.SwingTargetX, p.SwingDamp)
	s.SwingZ = ease.Lerp(s.SwingZ, s.SwingTargetZ, p.SwingDamp)
	s.ReturnTwist = ease.Lerp(s.ReturnTwist, s.ReturnTwistTarget, p.TwistEase)

	tiltX, tiltZ := s.SwingX, s.SwingZ
	if in.OnTurntable {
		tiltX += math.Sin(in.SpinAngle) * p.WobbleAmplitude
		tiltZ += math.Cos(in.SpinAngle) * p.WobbleAmplitude
	}

	return s, Frame{
		ReturnedToPlatter: settled,
		Position:          s.Position,
		RotationY:         in.UserRotation + in.SpinAngle + s.ReturnBaseTwist + s.ReturnTwist,
		TiltX:             tiltX,
		TiltZ:             tiltZ,
	}
}

func stepDrag(s State, in Input, p Params) State {
	s.PointerWorld = in.PointerWorld
	s.AttachOffset = s.AttachOffset.Lerp(p.HangOffset, p.OffsetRelaxRate)

	desired := in.PointerWorld.Add(s.AttachOffset)

	// Hard radius clamp on the planar offset from the anchor; the
	// direction is preserved, only the magnitude is bounded.
	off := orb.Point{desired.X - s.Anchor.X, desired.Y - s.Anchor.Y}
	if d := planar.Distance(orb.Point{}, off); d > p.MaxDragRadius && d > 0 {
		k := p.MaxDragRadius / d
		off[0] *= k
		off[1] *= k
	}

	s.LastTarget = s.Target
	s.Target = geom.Vec3{
		X: s.Anchor.X + off[0],
		Y: s.Anchor.Y + off[1],
		Z: s.Anchor.Z,
	}

	vel := s.Target.Sub(s.LastTarget)
	s.SwingTargetX = ease.Clamp(vel.Y*p.SwingVelocityFactor, -p.SwingMaxTilt, p.SwingMaxTilt)
	s.SwingTargetZ = ease.Clamp(-vel.X*p.SwingVelocityFactor, -p.SwingMaxTilt, p.SwingMaxTilt)
	return s
}

func stepSettle(s State, p Params) State {
	s.LastTarget = s.Target
	s.Target.X = ease.Lerp(s.Target.X, s.Anchor.X, p.ApproachRate)
	s.Target.Y = ease.Lerp(s.Target.Y, s.Anchor.Y, p.DropRate)
	s.Target.Z = s.Anchor.Z
	s.SwingTargetX = 0
	s.SwingTargetZ = 0
	s.ReturnTwistTarget = 0
	return s
}

func stepReturn(s State, p Params) State {
	s.LastTarget = s.Target

	clearance := p.NubClearance
	if clearance <= 0 {
		clearance = 0.25
	}

	if !s.ClearedNub {
		// Phase 1: hold clearance height while closing in above the
		// spindle.
		s.Target.X = ease.Lerp(s.Target.X, s.Anchor.X, p.ApproachRate)
		s.Target.Y = ease.Lerp(s.Target.Y, s.Anchor.Y+clearance, p.ApproachRate)
		s.Target.Z = s.Anchor.Z
		if planarDistance(s.Target, s.Anchor) < p.ClearEpsilon {
			s.ClearedNub = true
		}
	} else {
		// Phase 2: drop straight down onto the spindle.
		s.Target.X = s.Anchor.X
		s.Target.Y = ease.Lerp(s.Target.Y, s.Anchor.Y, p.DropRate)
		s.Target.Z = s.Anchor.Z
	}

	s.SwingTargetX = 0
	s.SwingTargetZ = 0
	return s
}

// planarDistance measures separation in the horizontal x/z plane.
// Dragging pins z to the anchor, so in practice this is |dx|.
func planarDistance(a, b geom.Vec3) float64 {
	return planar.Distance(orb.Point{a.X, a.Z}, orb.Point{b.X, b.Z})
}
