package mechanism

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/platterlab/internal/geom"
	"github.com/san-kum/platterlab/internal/input"
	"github.com/san-kum/platterlab/internal/scene"
)

const frame = 1.0 / 60

// counters tallies callback edges.
type counters struct {
	plays, pauses, rates int
	scrubs               []float64
}

func (c *counters) callbacks() Callbacks {
	return Callbacks{
		OnPlay:       func() { c.plays++ },
		OnPause:      func() { c.pauses++ },
		OnRateChange: func(float64) { c.rates++ },
		OnScrub:      func(s float64) { c.scrubs = append(c.scrubs, s) },
	}
}

func testRig() *scene.Node {
	root := scene.NewNode("turntable")
	root.AddChild(&scene.Node{Name: "Platter", Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	root.AddChild(&scene.Node{Name: "Pulley", Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	root.AddChild(&scene.Node{Name: "button", HitRadius: 0.4, Position: geom.Vec3{X: 2}, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	root.AddChild(&scene.Node{Name: "speedslide", HitRadius: 0.3, Position: geom.Vec3{X: 2, Z: 1}, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	mount := root.AddChild(&scene.Node{Name: "Mount", Position: geom.Vec3{X: -2}, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	mount.AddChild(&scene.Node{Name: "Tonearm", HitRadius: 0.5, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	return root
}

func newMech(c *counters) *Mechanism {
	m := New(testRig(), geom.NewCamera(), DefaultParams(), c.callbacks())
	m.SetViewport(800, 600)
	return m
}

// settle runs updates until playingSound stabilizes or n frames pass.
func settle(m *Mechanism, n int) {
	for i := 0; i < n; i++ {
		m.Update(frame)
	}
}

func startPlaying(t *testing.T, m *Mechanism, c *counters) {
	t.Helper()
	m.SetMediaDuration(180)
	m.SetVinylPresence(true)
	m.ToggleStartStop()
	m.BeginArmDrag()
	m.DragArmBy(-20 - m.GetTonearmYawDegrees())
	m.EndArmDrag()
	settle(m, 120)
	require.True(t, m.IsPlaying(), "needle never reached the groove")
	require.Equal(t, 1, c.plays)
}

func TestSpinUpMonotonicNoOvershoot(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.ToggleStartStop()

	target := (100.0 / 3) / 60 * 2 * math.Pi
	prev := 0.0
	for i := 0; i < 600; i++ {
		m.Update(frame)
		v := m.GetAngularStep() / frame
		require.GreaterOrEqual(t, v, prev-1e-12, "velocity must not decrease while spinning up")
		require.LessOrEqual(t, v, target+1e-9, "velocity must not overshoot the target")
		prev = v
	}
	assert.InDelta(t, target, prev, 1e-3)
}

func TestSpinNotInstantaneous(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.ToggleStartStop()
	m.Update(frame)

	target := (100.0 / 3) / 60 * 2 * math.Pi
	v := m.GetAngularStep() / frame
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, target)
}

func TestYawAlwaysClamped(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	p := DefaultParams()

	m.BeginArmDrag()
	for _, d := range []float64{-500, 1000, -3, 99, -0.1} {
		m.DragArmBy(d)
		require.GreaterOrEqual(t, m.GetTonearmYawDegrees(), p.MinYaw)
		require.LessOrEqual(t, m.GetTonearmYawDegrees(), p.MaxYaw)
	}
	m.EndArmDrag()
	for i := 0; i < 300; i++ {
		m.Update(frame)
		require.GreaterOrEqual(t, m.GetTonearmYawDegrees(), p.MinYaw)
		require.LessOrEqual(t, m.GetTonearmYawDegrees(), p.MaxYaw)
	}
}

func TestScrubOnReleaseInBand(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)

	m.BeginArmDrag()
	m.DragArmBy(-20)
	m.EndArmDrag()

	require.Len(t, c.scrubs, 1)
	want := 180 * (-20.0 - -15.0) / (-33.33 - -15.0)
	assert.InDelta(t, want, c.scrubs[0], 0.01)
}

func TestSweetSpotSnap(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)

	// Release just above the threshold: inside the snap band.
	m.BeginArmDrag()
	m.DragArmBy(-14)
	m.EndArmDrag()

	assert.InDelta(t, -15, m.GetTonearmYawDegrees(), 1e-9)
	require.Len(t, c.scrubs, 1)
	assert.InDelta(t, 0, c.scrubs[0], 1e-9)
}

func TestReleaseOutsideBandAutoReturns(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)

	m.BeginArmDrag()
	m.DragArmBy(-10)
	m.EndArmDrag()
	require.Empty(t, c.scrubs)

	settle(m, 600)
	assert.InDelta(t, 0, m.GetTonearmYawDegrees(), 0.2)
}

func TestNeedleDropIsEdgeTriggeredAndLagged(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)
	m.SetVinylPresence(true)
	m.ToggleStartStop()
	m.BeginArmDrag()
	m.DragArmBy(-20)
	m.EndArmDrag()

	// The needle eases down: play must not fire on the first frame.
	m.Update(frame)
	assert.False(t, m.IsPlaying())
	assert.Zero(t, c.plays)

	settle(m, 120)
	assert.True(t, m.IsPlaying())
	assert.Equal(t, 1, c.plays, "play fires once per transition, not per frame")
}

func TestVinylRevokedForcesPauseOnce(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	startPlaying(t, m, c)

	before := c.pauses
	m.SetVinylPresence(false)
	assert.False(t, m.IsPlaying(), "pause must be immediate")
	assert.Equal(t, before+1, c.pauses)

	settle(m, 60)
	assert.Equal(t, before+1, c.pauses, "pause must not refire")
}

func TestStopWhilePlayingPausesImmediately(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	startPlaying(t, m, c)

	m.ToggleStartStop()
	assert.False(t, m.IsPlaying())
	assert.Equal(t, 1, c.pauses)
}

func TestLiftNeedleIdempotent(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	startPlaying(t, m, c)

	m.LiftNeedle()
	m.LiftNeedle()
	m.PausePlayback()
	assert.Equal(t, 1, c.pauses)

	// The needle stays up: the gate must not re-trigger by itself.
	settle(m, 120)
	assert.False(t, m.IsPlaying())
	assert.Equal(t, 1, c.plays)
}

func TestMediaAdvancesAndDrivesArm(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	startPlaying(t, m, c)

	t0 := m.CurrentTime()
	yaw0 := m.GetTonearmYawDegrees()
	settle(m, 300)

	assert.Greater(t, m.CurrentTime(), t0)
	assert.Less(t, m.GetTonearmYawDegrees(), yaw0, "arm tracks playback inward")
}

func TestEndOfMediaStopsAndReturnsHome(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(2)
	m.SetVinylPresence(true)
	m.ToggleStartStop()
	m.BeginArmDrag()
	m.DragArmBy(-15.5)
	m.EndArmDrag()

	// 2s of media at rate 1 plus needle drop and return headroom.
	settle(m, 1200)

	assert.False(t, m.IsPlaying())
	assert.False(t, m.IsStartOn())
	assert.Equal(t, 1, c.plays)
	assert.Equal(t, 1, c.pauses)
	assert.InDelta(t, 0, m.GetTonearmYawDegrees(), 0.2)
}

func TestSpeedToggleRetunesRateAndSpin(t *testing.T) {
	c := &counters{}
	m := newMech(c)

	m.ToggleSpeed()
	assert.Equal(t, 1, c.rates)
	assert.InDelta(t, 1.5, m.PlaybackRate(), 1e-9)

	m.ToggleStartStop()
	settle(m, 900)
	want45 := 45.0 / 60 * 2 * math.Pi
	assert.InDelta(t, want45, m.GetAngularStep()/frame, 1e-3)

	m.ToggleSpeed()
	assert.InDelta(t, 1.0, m.PlaybackRate(), 1e-9)
}

func TestSetMediaDurationRejectsInvalid(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)

	for _, bad := range []float64{0, 1, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		m.SetMediaDuration(bad)
	}

	// Still scrubs against the original duration.
	m.BeginArmDrag()
	m.DragArmBy(-33.33)
	m.EndArmDrag()
	require.Len(t, c.scrubs, 1)
	assert.InDelta(t, 180, c.scrubs[0], 0.01)
}

func TestResetState(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	startPlaying(t, m, c)

	m.ResetState()
	assert.False(t, m.IsPlaying())
	assert.False(t, m.IsStartOn())
	assert.Zero(t, m.CurrentTime())
	assert.InDelta(t, 0, m.GetTonearmYawDegrees(), 1e-9)
	assert.Equal(t, 1, c.pauses)
}

func TestMissingNodesAreInert(t *testing.T) {
	c := &counters{}
	bare := scene.NewNode("empty")
	m := New(bare, geom.NewCamera(), DefaultParams(), c.callbacks())
	m.SetViewport(800, 600)

	// Nothing resolves; nothing may panic and nothing is hit.
	handled := m.HandlePointer(input.Event{Kind: input.Down, X: 400, Y: 300})
	assert.False(t, handled)

	m.ToggleStartStop()
	m.ToggleSpeed()
	settle(m, 60)
	assert.Greater(t, m.GetAngularStep(), 0.0)
}

func TestPointerHitTogglesButton(t *testing.T) {
	c := &counters{}
	root := scene.NewNode("turntable")
	// Button dead center in view so the center ray hits it.
	root.AddChild(&scene.Node{Name: "button", HitRadius: 0.5, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	m := New(root, geom.NewCamera(), DefaultParams(), c.callbacks())
	m.SetViewport(800, 600)

	handled := m.HandlePointer(input.Event{Kind: input.Down, X: 400, Y: 300})
	require.True(t, handled)
	assert.True(t, m.IsStartOn())

	// A corner click misses.
	handled = m.HandlePointer(input.Event{Kind: input.Down, X: 5, Y: 5})
	assert.False(t, handled)
}

func TestPointerDragScrubs(t *testing.T) {
	c := &counters{}
	root := scene.NewNode("turntable")
	mount := root.AddChild(&scene.Node{Name: "Mount", Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	mount.AddChild(&scene.Node{Name: "Tonearm", HitRadius: 0.6, Scale: geom.Vec3{X: 1, Y: 1, Z: 1}})
	m := New(root, geom.NewCamera(), DefaultParams(), c.callbacks())
	m.SetViewport(800, 600)
	m.SetMediaDuration(180)

	require.True(t, m.HandlePointer(input.Event{Kind: input.Down, PointerID: 7, X: 400, Y: 300}))

	// Drag left far enough to land inside the playable band.
	p := DefaultParams()
	px := -20 / p.DragSensitivity
	m.HandlePointer(input.Event{Kind: input.Move, PointerID: 7, X: 400 + px, Y: 300})
	m.HandlePointer(input.Event{Kind: input.Up, PointerID: 7, X: 400 + px, Y: 300})

	require.Len(t, c.scrubs, 1)
	want := 180 * (-20.0 - -15.0) / (-33.33 - -15.0)
	assert.InDelta(t, want, c.scrubs[0], 0.01)
}

func TestPointerCancelEndsDragLikeUp(t *testing.T) {
	c := &counters{}
	m := newMech(c)
	m.SetMediaDuration(180)

	m.BeginArmDrag()
	m.DragArmBy(-20)
	m.HandlePointer(input.Event{Kind: input.Cancel})
	require.Len(t, c.scrubs, 1)
}
