package mechanism

import "github.com/san-kum/platterlab/internal/scene"

// Parts are the mechanical nodes the mechanism drives, resolved once
// by name at construction. A nil handle leaves that feature inert:
// the mechanism never re-traverses and never fails on a missing node.
type Parts struct {
	Platter    *scene.Node
	Pulley     *scene.Node
	Button     *scene.Node
	SpeedSlide *scene.Node
	Mount      *scene.Node
	Tonearm    *scene.Node
}

// ResolveParts looks up the named mechanical nodes under root.
// The tonearm is searched inside the mount first, with the
// "Tonearm Tip" fallback, and falls back to the root itself so pitch
// still has somewhere to render on degenerate rigs.
func ResolveParts(root *scene.Node) Parts {
	p := Parts{
		Platter:    root.Find("Platter"),
		Pulley:     root.Find("Pulley"),
		Button:     root.Find("button"),
		SpeedSlide: root.Find("speedslide"),
		Mount:      root.Find("Mount"),
	}
	if p.Mount != nil {
		p.Tonearm = p.Mount.Find("Tonearm")
		if p.Tonearm == nil {
			p.Tonearm = p.Mount.Find("Tonearm Tip")
		}
	}
	if p.Tonearm == nil {
		p.Tonearm = root
	}
	return p
}
