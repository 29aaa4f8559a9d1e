package vinyl

import "github.com/san-kum/platterlab/internal/geom"

// TwistPolicy selects what the return twist does during the drop
// phase of the platter return.
type TwistPolicy int

const (
	// TwistCommitFinal eases the twist toward a fixed final angle and
	// commits it into the base rotation when the return completes.
	TwistCommitFinal TwistPolicy = iota
	// TwistEaseZero eases the twist back to zero during the drop.
	TwistEaseZero
)

// Params bundles every tunable of the drag/return physics so page
// variants can share one implementation.
type Params struct {
	MaxDragRadius float64

	// HangOffset is where the disc settles relative to the pointer
	// when the implied string goes slack.
	HangOffset      geom.Vec3
	OffsetRelaxRate float64

	// Fixed-factor smoothing rates, applied once per frame.
	PositionLerp float64
	ApproachRate float64
	DropRate     float64

	SwingVelocityFactor float64
	SwingMaxTilt        float64
	SwingDamp           float64

	WobbleAmplitude float64

	NubClearance  float64
	ClearEpsilon  float64
	SettleEpsilon float64

	Twist      TwistPolicy
	FinalTwist float64
	TwistEase  float64
}

func DefaultParams() Params {
	return Params{
		MaxDragRadius:       2.6,
		HangOffset:          geom.Vec3{X: 0, Y: -0.9, Z: 0},
		OffsetRelaxRate:     0.08,
		PositionLerp:        0.18,
		ApproachRate:        0.10,
		DropRate:            0.045,
		SwingVelocityFactor: 2.4,
		SwingMaxTilt:        0.45,
		SwingDamp:           0.12,
		WobbleAmplitude:     0.006,
		NubClearance:        0.55,
		ClearEpsilon:        0.05,
		SettleEpsilon:       0.02,
		Twist:               TwistCommitFinal,
		FinalTwist:          -1.2,
		TwistEase:           0.07,
	}
}
