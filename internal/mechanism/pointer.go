package mechanism

import (
	"github.com/san-kum/platterlab/internal/ease"
	"github.com/san-kum/platterlab/internal/input"
	"github.com/san-kum/platterlab/internal/timemap"
)

// HandlePointer routes one pointer event and reports whether the
// mechanism consumed it. Down events hit-test the button, speed
// slide and tonearm; move events drive an active arm drag or hover;
// up, cancel and leave all end the drag the same way.
func (m *Mechanism) HandlePointer(ev input.Event) bool {
	switch ev.Kind {
	case input.Down:
		return m.pointerDown(ev)
	case input.Move:
		return m.pointerMove(ev)
	default:
		return m.pointerUp(ev)
	}
}

func (m *Mechanism) pointerDown(ev input.Event) bool {
	if m.camera == nil || m.width <= 0 || m.height <= 0 {
		return false
	}
	ray := m.camera.ScreenRay(ev.X, ev.Y, m.width, m.height)

	if _, ok := m.parts.Button.HitTest(ray); ok {
		m.ToggleStartStop()
		return true
	}
	if _, ok := m.parts.SpeedSlide.HitTest(ray); ok {
		m.ToggleSpeed()
		return true
	}

	armHit := false
	if _, ok := m.parts.Tonearm.HitTest(ray); ok {
		armHit = true
	} else if _, ok := m.parts.Mount.HitTest(ray); ok {
		armHit = true
	}
	if !armHit {
		return false
	}

	m.BeginArmDrag()
	m.lastPointerX = ev.X
	m.capture.Acquire(ev.PointerID)
	return true
}

// BeginArmDrag grabs the tonearm: the needle lifts, playback pauses
// now and the arm stops trying to go home.
func (m *Mechanism) BeginArmDrag() {
	m.forcePause()
	m.draggingArm = true
	m.autoReturn = false
}

// DragArmBy moves an active drag by a yaw delta in degrees, clamped
// to the arm's travel.
func (m *Mechanism) DragArmBy(deltaDeg float64) {
	if !m.draggingArm {
		return
	}
	m.yaw = ease.Clamp(m.yaw+deltaDeg, m.tun.MinYaw, m.tun.MaxYaw)
}

// EndArmDrag releases the arm: a release in the sweet spot just
// outside the band snaps onto the threshold groove, and a release
// inside the band scrubs the media clock to the matching seconds.
func (m *Mechanism) EndArmDrag() {
	if !m.draggingArm {
		return
	}
	m.draggingArm = false

	if m.yaw > m.tun.PlayThreshold && m.yaw <= m.tun.PlayThreshold+m.tun.SnapBand {
		m.yaw = m.tun.PlayThreshold
	}

	if m.IsTonearmInPlayArea() {
		m.needleLifted = false
		if m.duration > 0 {
			sec := timemap.Seconds(m.yaw, m.tun.PlayThreshold, m.tun.MinYaw, m.duration)
			m.clock = sec
			if m.cb.OnScrub != nil {
				m.cb.OnScrub(sec)
			}
		}
	} else {
		m.autoReturn = true
	}
}

func (m *Mechanism) pointerMove(ev input.Event) bool {
	if !m.draggingArm {
		m.updateHover(ev)
		return false
	}

	dx := ev.X - m.lastPointerX
	m.lastPointerX = ev.X

	zoom := 1.0
	if m.camera != nil {
		zoom = m.camera.ZoomFactor()
	}
	m.DragArmBy(dx * m.tun.DragSensitivity / zoom)
	return true
}

func (m *Mechanism) pointerUp(ev input.Event) bool {
	if !ev.Kind.Ended() {
		return false
	}
	m.capture.ReleaseIfHeld(ev.PointerID)
	if !m.draggingArm {
		return false
	}
	m.EndArmDrag()
	return true
}

func (m *Mechanism) updateHover(ev input.Event) {
	m.hoveringArm = false
	if m.camera == nil || m.width <= 0 || m.height <= 0 {
		return
	}
	ray := m.camera.ScreenRay(ev.X, ev.Y, m.width, m.height)
	if _, ok := m.parts.Tonearm.HitTest(ray); ok {
		m.hoveringArm = true
	}
}
