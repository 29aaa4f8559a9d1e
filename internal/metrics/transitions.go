package metrics

import "github.com/san-kum/platterlab/internal/session"

// PlayTransitions counts playingSound edges. A correctly gated
// deck produces exactly one per needle drop or lift, never one per
// frame.
type PlayTransitions struct {
	name    string
	prev    bool
	primed  bool
	count   int
}

func NewPlayTransitions() *PlayTransitions {
	return &PlayTransitions{name: "play_transitions"}
}

func (p *PlayTransitions) Name() string { return p.name }

func (p *PlayTransitions) Observe(f session.FrameState) {
	if p.primed && f.Playing != p.prev {
		p.count++
	}
	p.prev = f.Playing
	p.primed = true
}

func (p *PlayTransitions) Value() float64 { return float64(p.count) }

func (p *PlayTransitions) Reset() {
	p.prev = false
	p.primed = false
	p.count = 0
}
