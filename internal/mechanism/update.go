package mechanism

import (
	"math"

	"github.com/san-kum/platterlab/internal/ease"
	"github.com/san-kum/platterlab/internal/timemap"
)

// Update advances the mechanism one frame. The order is fixed: spin
// first, then tonearm yaw, then the media clock, then pitch, and the
// playback gate last so it reads this frame's yaw and pitch.
func (m *Mechanism) Update(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}

	m.stepSpin(dt)
	m.stepButton(dt)
	m.stepArmYaw(dt)
	m.stepMedia(dt)
	m.stepPitch()
	m.stepGate()
	m.render()
}

func (m *Mechanism) stepSpin(dt float64) {
	m.targetVel = 0
	if m.startOn {
		m.targetVel = m.rpm() / 60 * 2 * math.Pi
	}
	m.vel = ease.Toward(m.vel, m.targetVel, m.tun.SpinResponse, dt)
	m.lastStep = m.vel * dt

	if m.parts.Platter != nil {
		m.parts.Platter.Rotation.Y += m.lastStep
	}
	if m.parts.Pulley != nil {
		m.parts.Pulley.Rotation.Y += m.lastStep * m.tun.PulleyRatio
	}
}

func (m *Mechanism) stepButton(dt float64) {
	if m.parts.Button == nil {
		return
	}
	if m.pressTimer > 0 {
		m.pressTimer -= dt
		m.parts.Button.Position.Y = m.buttonRestY - m.tun.PressOffset
	} else {
		m.parts.Button.Position.Y = m.buttonRestY
	}
}

func (m *Mechanism) stepArmYaw(dt float64) {
	if m.draggingArm {
		return
	}
	if m.autoReturn || !m.IsTonearmInPlayArea() {
		m.yaw = ease.Toward(m.yaw, m.tun.HomeYaw, m.tun.ReturnRate, dt)
		m.yaw = ease.Clamp(m.yaw, m.tun.MinYaw, m.tun.MaxYaw)
		if m.autoReturn && ease.Near(m.yaw, m.tun.HomeYaw, m.tun.HomeEpsilon) {
			m.yaw = m.tun.HomeYaw
			m.autoReturn = false
		}
	}
}

// stepMedia advances the clock while the needle is audibly down and
// drives the arm from the clock so it visually tracks playback.
func (m *Mechanism) stepMedia(dt float64) {
	if !(m.startOn && m.playing && m.vinylOn && m.duration > 0 && m.IsTonearmInPlayArea()) {
		return
	}
	m.clock += dt * m.rate
	m.playPhase += dt * m.tun.WobbleFreq

	if m.clock >= m.duration {
		m.clock = m.duration
		m.endOfMedia()
		return
	}

	m.yaw = timemap.Yaw(m.clock, m.tun.PlayThreshold, m.tun.MinYaw, m.duration)
	if m.yaw <= m.tun.MinYaw {
		m.yaw = m.tun.MinYaw
		m.endOfMedia()
	}
}

func (m *Mechanism) endOfMedia() {
	m.startOn = false
	m.autoReturn = true
}

func (m *Mechanism) stepPitch() {
	target := m.tun.RestPitch
	switch {
	case m.draggingArm:
		target = m.tun.RestPitch - m.pitchDir*m.tun.HoverLift
	case m.startOn && m.vinylOn && !m.needleLifted && m.IsTonearmInPlayArea():
		target = m.loweredPitch()
	case m.hoveringArm:
		target = m.tun.RestPitch - m.pitchDir*m.tun.HoverLift
	}
	m.pitch = ease.Lerp(m.pitch, target, m.tun.PitchLerp)
}

func (m *Mechanism) loweredPitch() float64 {
	return m.tun.RestPitch + m.pitchDir*m.tun.PitchDrop
}

// stepGate derives playingSound from this frame's state and fires
// the play/pause callbacks on edges only. The pitch lag is what
// makes the edges: the needle must visually reach the groove.
func (m *Mechanism) stepGate() {
	needleDown := ease.Near(m.pitch, m.loweredPitch(), m.tun.PitchEpsilon)
	should := m.startOn && m.vinylOn && !m.draggingArm &&
		m.IsTonearmInPlayArea() && m.duration > 0 && needleDown

	if should && !m.playing {
		m.playing = true
		if m.cb.OnPlay != nil {
			m.cb.OnPlay()
		}
	} else if !should && m.playing {
		m.playing = false
		if m.cb.OnPause != nil {
			m.cb.OnPause()
		}
	}
}

// render writes the frame's pose into the scene nodes. The wobble is
// cosmetic, applied to the rendered value only so it can never feed
// back into the gate.
func (m *Mechanism) render() {
	yaw, pitch := m.yaw, m.pitch
	if m.playing {
		yaw += math.Sin(m.playPhase) * m.tun.WobbleYawAmp
		pitch += math.Cos(m.playPhase*1.7) * m.tun.WobblePitchAmp
	}
	if m.parts.Mount != nil {
		m.parts.Mount.Rotation.Y = yaw * math.Pi / 180
	}
	if m.parts.Tonearm != nil && m.parts.Tonearm != m.parts.Mount {
		m.parts.Tonearm.Rotation.X = pitch * math.Pi / 180
	}
}
