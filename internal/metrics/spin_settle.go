package metrics

import (
	"math"

	"github.com/san-kum/platterlab/internal/session"
)

// SpinSettle measures how long the platter takes to reach a target
// angular velocity after the motor engages.
type SpinSettle struct {
	name      string
	target    float64
	tolerance float64
	startT    float64
	started   bool
	settledAt float64
	settled   bool
}

func NewSpinSettle(target, tolerance float64) *SpinSettle {
	return &SpinSettle{
		name:      "spin_settle",
		target:    target,
		tolerance: tolerance,
	}
}

func (s *SpinSettle) Name() string { return s.name }

func (s *SpinSettle) Observe(f session.FrameState) {
	if s.settled {
		return
	}
	if !s.started {
		if f.StartOn {
			s.started = true
			s.startT = f.T
		}
		return
	}
	if math.Abs(f.AngularVel-s.target) <= s.tolerance {
		s.settledAt = f.T - s.startT
		s.settled = true
	}
}

// Value is the settle time in seconds, or -1 when it never settled.
func (s *SpinSettle) Value() float64 {
	if !s.settled {
		return -1
	}
	return s.settledAt
}

func (s *SpinSettle) Reset() {
	s.started = false
	s.settled = false
	s.startT = 0
	s.settledAt = 0
}
