package session

import "github.com/san-kum/platterlab/internal/input"

// ScriptEvent fires one pointer event when the run reaches its frame.
type ScriptEvent struct {
	Frame int
	Event input.Event
}

// Script is a frame-indexed pointer recording. Events must be sorted
// by frame; replaying the same script over the same config reproduces
// the same run.
type Script []ScriptEvent

// Callback adapts the script to a Run callback. Pending events for the
// current frame are delivered before next runs.
func (sc Script) Callback(s *Session, next func(FrameState) bool) func(FrameState) bool {
	i := 0
	return func(f FrameState) bool {
		for i < len(sc) && sc[i].Frame <= f.Frame {
			s.HandlePointer(sc[i].Event)
			i++
		}
		if next != nil {
			return next(f)
		}
		return true
	}
}
