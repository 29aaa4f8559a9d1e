// Package mechanism is the turntable's stateful core: platter spin-up
// and spin-down, tonearm yaw/pitch, needle-drop gating of playback,
// and the yaw<->media-time coupling used for scrubbing.
package mechanism

import (
	"math"

	"github.com/san-kum/platterlab/internal/geom"
	"github.com/san-kum/platterlab/internal/input"
	"github.com/san-kum/platterlab/internal/scene"
	"github.com/san-kum/platterlab/internal/timemap"
)

// Callbacks fire on state transitions only, never per frame.
type Callbacks struct {
	OnScrub      func(seconds float64)
	OnPlay       func()
	OnPause      func()
	OnRateChange func(rate float64)
}

type Mechanism struct {
	parts Parts
	tun    Params
	cb     Callbacks

	camera *geom.Camera
	width  int
	height int

	capture input.Capture

	// Tonearm geometry state.
	yaw       float64
	pitch     float64
	pitchDir  float64 // +1 or -1, derived once from the initial pose

	// Platter spin.
	targetVel float64 // rad/s
	vel       float64
	lastStep  float64

	// Playback gating.
	startOn     bool
	vinylOn     bool
	draggingArm bool
	hoveringArm bool
	autoReturn   bool
	playing      bool
	needleLifted bool

	// Media clock.
	duration float64
	clock    float64
	rate     float64

	speedFast  bool
	pressTimer float64
	playPhase  float64

	lastPointerX float64

	// Initial visual offsets so press/slide travel is relative.
	buttonRestY float64
	slideRestX  float64
}

// New resolves the mechanical parts under root and returns a
// mechanism at rest. Camera may be nil; hit-testing is then inert.
func New(root *scene.Node, cam *geom.Camera, tun Params, cb Callbacks) *Mechanism {
	parts := ResolveParts(root)

	m := &Mechanism{
		parts:  parts,
		tun:    tun,
		cb:     cb,
		camera: cam,
		yaw:    tun.HomeYaw,
		pitch:  tun.RestPitch,
		rate:   tun.RateSlow,
	}

	// Lowering direction comes from how the arm was posed: an arm
	// resting tilted up lowers by going negative.
	m.pitchDir = 1
	if parts.Tonearm != nil && parts.Tonearm.Rotation.X > 0 {
		m.pitchDir = -1
	}

	if parts.Button != nil {
		m.buttonRestY = parts.Button.Position.Y
	}
	if parts.SpeedSlide != nil {
		m.slideRestX = parts.SpeedSlide.Position.X
	}
	return m
}

// SetViewport tells the mechanism the pixel size of the pointer
// surface, needed to unproject events.
func (m *Mechanism) SetViewport(w, h int) {
	m.width, m.height = w, h
}

func (m *Mechanism) GetAngularStep() float64      { return m.lastStep }
func (m *Mechanism) GetTonearmYawDegrees() float64 { return m.yaw }
func (m *Mechanism) IsPlaying() bool               { return m.playing }
func (m *Mechanism) CurrentTime() float64          { return m.clock }
func (m *Mechanism) PlaybackRate() float64         { return m.rate }
func (m *Mechanism) IsStartOn() bool               { return m.startOn }
func (m *Mechanism) VinylPresent() bool            { return m.vinylOn }
func (m *Mechanism) NeedlePitch() float64          { return m.pitch }

// IsTonearmInPlayArea reports whether the needle sits over the
// record: yaw inside [minYaw, playThreshold].
func (m *Mechanism) IsTonearmInPlayArea() bool {
	return m.yaw <= m.tun.PlayThreshold && m.yaw >= m.tun.MinYaw
}

// SetMediaDuration installs the media length in seconds. Non-finite
// or too-short values are ignored and the prior value kept.
func (m *Mechanism) SetMediaDuration(seconds float64) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 1 {
		return
	}
	m.duration = seconds
	if m.clock > seconds {
		m.clock = seconds
	}
}

// SetVinylPresence reports whether a disc sits on the platter.
// Revoking it mid-play forces an immediate pause.
func (m *Mechanism) SetVinylPresence(present bool) {
	m.vinylOn = present
	if !present {
		m.forcePause()
	}
}

// ToggleStartStop flips the motor. Turning off while playing pauses
// immediately rather than waiting for the velocity to decay.
func (m *Mechanism) ToggleStartStop() {
	m.startOn = !m.startOn
	m.pressTimer = m.tun.PressDuration
	if m.startOn {
		m.needleLifted = false
	} else {
		m.forcePause()
	}
}

// ToggleSpeed swaps between the two RPM presets and retunes the
// playback rate accordingly.
func (m *Mechanism) ToggleSpeed() {
	m.speedFast = !m.speedFast
	if m.speedFast {
		m.rate = m.tun.RateFast
	} else {
		m.rate = m.tun.RateSlow
	}
	if m.parts.SpeedSlide != nil {
		x := m.slideRestX
		if m.speedFast {
			x += m.tun.SlideTravel
		}
		m.parts.SpeedSlide.Position.X = x
	}
	if m.cb.OnRateChange != nil {
		m.cb.OnRateChange(m.rate)
	}
}

// LiftNeedle is an idempotent force-pause: the needle comes up, any
// playing state ends now, and it stays up until something re-engages
// playback (motor toggle or a scrub release in the band).
func (m *Mechanism) LiftNeedle() {
	m.needleLifted = true
	m.forcePause()
}

// PausePlayback is LiftNeedle under its playback-facing name.
func (m *Mechanism) PausePlayback() {
	m.LiftNeedle()
}

// ReturnTonearmHome starts the animated swing back to the rest yaw.
func (m *Mechanism) ReturnTonearmHome() {
	m.forcePause()
	m.autoReturn = true
}

// ResetState lifts the needle, stops the motor, homes the arm and
// zeroes the clock.
func (m *Mechanism) ResetState() {
	m.forcePause()
	m.startOn = false
	m.draggingArm = false
	m.autoReturn = false
	m.needleLifted = false
	m.yaw = m.tun.HomeYaw
	m.pitch = m.tun.RestPitch
	m.clock = 0
	m.playPhase = 0
}

// forcePause drops playingSound and fires OnPause exactly once.
func (m *Mechanism) forcePause() {
	if !m.playing {
		return
	}
	m.playing = false
	if m.cb.OnPause != nil {
		m.cb.OnPause()
	}
}

func (m *Mechanism) rpm() float64 {
	if m.speedFast {
		return m.tun.RPMFast
	}
	return m.tun.RPMSlow
}

// CurrentSeconds maps the present yaw through the playable band.
func (m *Mechanism) CurrentSeconds() float64 {
	return timemap.Seconds(m.yaw, m.tun.PlayThreshold, m.tun.MinYaw, m.duration)
}
