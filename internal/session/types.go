package session

import "github.com/san-kum/platterlab/internal/geom"

// FrameState is the per-frame snapshot handed to observers, metrics
// and the run callback.
type FrameState struct {
	Frame int
	T     float64

	Yaw        float64
	Pitch      float64
	AngularVel float64
	Clock      float64
	Playing    bool
	StartOn    bool

	VinylPos       geom.Vec3
	VinylRotationY float64
	VinylHeld      bool
	VinylOnDeck    bool
	VinylReturning bool
}

type Observer interface {
	OnFrame(f FrameState)
}

type Metric interface {
	Name() string
	Observe(f FrameState)
	Value() float64
	Reset()
}

// Result collects the traces and metric values of a headless run.
type Result struct {
	Frames  int
	Times   []float64
	Yaw     []float64
	Vel     []float64
	Clock   []float64
	Metrics map[string]float64
}
