package metrics

import "github.com/san-kum/platterlab/internal/session"

// WowFlutter tracks the peak-to-peak deviation of the tonearm yaw
// around its clock-driven path while playing. The cosmetic wobble
// lives only in the rendered pose, so a clean gate keeps this small.
type WowFlutter struct {
	name    string
	min     float64
	max     float64
	prev    float64
	primed  bool
	samples int
}

func NewWowFlutter() *WowFlutter {
	return &WowFlutter{name: "wow_flutter"}
}

func (w *WowFlutter) Name() string { return w.name }

func (w *WowFlutter) Observe(f session.FrameState) {
	if !f.Playing {
		w.primed = false
		return
	}
	delta := 0.0
	if w.primed {
		delta = f.Yaw - w.prev
	}
	w.prev = f.Yaw
	if !w.primed {
		w.primed = true
		return
	}
	w.samples++
	if w.samples == 1 || delta < w.min {
		w.min = delta
	}
	if w.samples == 1 || delta > w.max {
		w.max = delta
	}
}

// Value is the peak-to-peak per-frame yaw delta while playing.
func (w *WowFlutter) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return w.max - w.min
}

func (w *WowFlutter) Reset() {
	w.min = 0
	w.max = 0
	w.prev = 0
	w.primed = false
	w.samples = 0
}
