package input

import "testing"

func TestKindEnded(t *testing.T) {
	for _, k := range []Kind{Up, Cancel, Leave} {
		if !k.Ended() {
			t.Errorf("kind %d should end a drag", k)
		}
	}
	for _, k := range []Kind{Down, Move} {
		if k.Ended() {
			t.Errorf("kind %d should not end a drag", k)
		}
	}
}

func TestCaptureLifecycle(t *testing.T) {
	var c Capture
	if c.Held() {
		t.Error("fresh capture should be free")
	}

	c.Acquire(7)
	if !c.Held() {
		t.Error("acquire should hold")
	}

	// A different pointer cannot steal the release.
	if c.ReleaseIfHeld(3) {
		t.Error("wrong pointer released the capture")
	}
	if !c.Held() {
		t.Error("capture lost to wrong pointer")
	}

	if !c.ReleaseIfHeld(7) {
		t.Error("owner failed to release")
	}
	if c.Held() {
		t.Error("still held after release")
	}

	// Double release is a quiet no-op.
	if c.ReleaseIfHeld(7) {
		t.Error("double release reported work")
	}
}
