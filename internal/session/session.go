// Package session wires the turntable mechanism and the vinyl physics
// into one frame-driven loop the way a rendering host would: the two
// cores never call each other, the session forwards presence, spin and
// settle signals between them.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/platterlab/internal/config"
	"github.com/san-kum/platterlab/internal/geom"
	"github.com/san-kum/platterlab/internal/input"
	"github.com/san-kum/platterlab/internal/mechanism"
	"github.com/san-kum/platterlab/internal/scene"
	"github.com/san-kum/platterlab/internal/vinyl"
)

type Session struct {
	cfg  *config.Config
	mech *mechanism.Mechanism
	rig  *scene.Node
	cam  *geom.Camera

	vinylParams vinyl.Params
	vinylState  vinyl.State
	vinylHeld   bool
	vinylOnDeck bool

	pointer   geom.Vec3
	spindle   geom.Vec3
	holdPoint geom.Vec3

	spinAngle    float64
	userRotation float64

	t     float64
	frame int

	log       zerolog.Logger
	observers []Observer
	metrics   []Metric
}

// DefaultRig builds the named node tree the mechanism expects, with
// hit proxies sized for the default camera.
func DefaultRig() *scene.Node {
	root := scene.NewNode("turntable")

	platter := scene.NewNode("Platter")
	root.AddChild(platter)

	pulley := scene.NewNode("Pulley")
	pulley.Position = geom.Vec3{X: -2.4, Z: -1.8}
	root.AddChild(pulley)

	button := scene.NewNode("button")
	button.Position = geom.Vec3{X: 2.6, Z: 2.1}
	button.HitRadius = 0.35
	root.AddChild(button)

	slide := scene.NewNode("speedslide")
	slide.Position = geom.Vec3{X: 2.6, Z: 1.2}
	slide.HitRadius = 0.3
	root.AddChild(slide)

	mount := scene.NewNode("Mount")
	mount.Position = geom.Vec3{X: 3.1, Z: -2.2}
	root.AddChild(mount)

	arm := scene.NewNode("Tonearm")
	arm.Position = geom.Vec3{Z: 2.4}
	arm.HitRadius = 0.5
	mount.AddChild(arm)

	return root
}

// New assembles a session around the given tuning. The logger may be
// zerolog.Nop(); the cores themselves never log.
func New(cfg *config.Config, logger zerolog.Logger) *Session {
	s := &Session{
		cfg:         cfg,
		rig:         DefaultRig(),
		cam:         geom.NewCamera(),
		vinylParams: cfg.VinylParams(),
		log:         logger,
		vinylOnDeck: true,
		spindle:     geom.Vec3{Y: 0.06},
		holdPoint:   geom.Vec3{X: 2.0, Y: 2.2, Z: 3.0},
	}
	s.vinylState = vinyl.NewState(s.spindle)

	cb := mechanism.Callbacks{
		OnPlay: func() {
			s.log.Info().Float64("t", s.t).Msg("needle down, playback started")
		},
		OnPause: func() {
			s.log.Info().Float64("t", s.t).Msg("playback paused")
		},
		OnScrub: func(sec float64) {
			s.log.Info().Float64("seconds", sec).Msg("scrubbed")
		},
		OnRateChange: func(rate float64) {
			s.log.Info().Float64("rate", rate).Msg("speed changed")
		},
	}

	s.mech = mechanism.New(s.rig, s.cam, cfg.MechanismParams(), cb)
	s.mech.SetViewport(800, 600)
	s.mech.SetMediaDuration(cfg.MediaDuration)
	s.mech.SetVinylPresence(true)
	return s
}

func (s *Session) Config() *config.Config          { return s.cfg }
func (s *Session) Mechanism() *mechanism.Mechanism { return s.mech }
func (s *Session) Camera() *geom.Camera            { return s.cam }
func (s *Session) Rig() *scene.Node                { return s.rig }
func (s *Session) VinylState() vinyl.State         { return s.vinylState }
func (s *Session) VinylHeld() bool                 { return s.vinylHeld }
func (s *Session) VinylOnDeck() bool               { return s.vinylOnDeck }

func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Session) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }

// HandlePointer forwards an event to the mechanism hit-testing.
func (s *Session) HandlePointer(ev input.Event) bool {
	return s.mech.HandlePointer(ev)
}

// GrabVinyl lifts the disc off the platter onto the pointer. The
// physics record persists; only the anchor and presence flip.
func (s *Session) GrabVinyl(pointerWorld geom.Vec3) {
	if s.vinylHeld {
		return
	}
	s.vinylHeld = true
	s.vinylOnDeck = false
	s.pointer = pointerWorld
	s.mech.SetVinylPresence(false)
	s.vinylState = s.vinylState.Grab(pointerWorld).ReAnchor(s.holdPoint)
	s.log.Info().Msg("vinyl grabbed")
}

// MovePointer updates the world-space pointer position feeding an
// active vinyl drag.
func (s *Session) MovePointer(p geom.Vec3) {
	s.pointer = p
}

// DropVinyl releases a held disc into the two-phase platter return.
func (s *Session) DropVinyl() {
	if !s.vinylHeld {
		return
	}
	s.vinylHeld = false
	s.vinylState = s.vinylState.ReAnchor(s.spindle).StartReturn(s.vinylParams)
	s.log.Info().Msg("vinyl dropped, returning to platter")
}

// Step advances both cores one frame and reports the snapshot.
// Ownership transfer back to the platter happens on the settle pulse
// so there is never a frame with two writers.
func (s *Session) Step(dt float64) FrameState {
	s.mech.Update(dt)

	if s.vinylOnDeck {
		s.spinAngle += s.mech.GetAngularStep()
	}

	in := vinyl.Input{
		DragActive:   s.vinylHeld,
		PointerWorld: s.pointer,
		OnTurntable:  s.vinylOnDeck,
		SpinAngle:    s.spinAngle,
		UserRotation: s.userRotation,
	}
	st, fr := vinyl.Update(s.vinylState, in, s.vinylParams)
	s.vinylState = st

	if fr.ReturnedToPlatter {
		s.vinylOnDeck = true
		s.mech.SetVinylPresence(true)
		s.log.Info().Msg("vinyl settled on platter")
	}

	s.t += dt
	s.frame++

	f := FrameState{
		Frame:          s.frame,
		T:              s.t,
		Yaw:            s.mech.GetTonearmYawDegrees(),
		Pitch:          s.mech.NeedlePitch(),
		AngularVel:     s.mech.GetAngularStep() / dt,
		Clock:          s.mech.CurrentTime(),
		Playing:        s.mech.IsPlaying(),
		StartOn:        s.mech.IsStartOn(),
		VinylPos:       fr.Position,
		VinylRotationY: fr.RotationY,
		VinylHeld:      s.vinylHeld,
		VinylOnDeck:    s.vinylOnDeck,
		VinylReturning: st.Returning,
	}

	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f
}

// Run drives the session for a fixed number of frames, recording
// traces. The callback may stop the run early by returning false;
// a nil callback runs to completion.
func (s *Session) Run(ctx context.Context, frames int, dt float64, callback func(FrameState) bool) (*Result, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", frames)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Times:   make([]float64, 0, frames),
		Yaw:     make([]float64, 0, frames),
		Vel:     make([]float64, 0, frames),
		Clock:   make([]float64, 0, frames),
		Metrics: make(map[string]float64),
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := s.Step(dt)
		result.Frames++
		result.Times = append(result.Times, f.T)
		result.Yaw = append(result.Yaw, f.Yaw)
		result.Vel = append(result.Vel, f.AngularVel)
		result.Clock = append(result.Clock, f.Clock)

		if callback != nil && !callback(f) {
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}
