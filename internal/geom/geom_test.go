package geom

import (
	"math"
	"testing"
)

func almostVec(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVecBasics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestLerp(t *testing.T) {
	a, b := Vec3{0, 0, 0}, Vec3{10, -10, 2}
	mid := a.Lerp(b, 0.5)
	if !almostVec(mid, Vec3{5, -5, 1}, 1e-12) {
		t.Errorf("Lerp midpoint = %v", mid)
	}
}

func TestScreenRayCenterGoesThroughTarget(t *testing.T) {
	cam := NewCamera()
	ray := cam.ScreenRay(400, 300, 800, 600)

	// A ray through the screen center must pass near the camera target.
	toTarget := cam.Target.Sub(cam.Position).Normalize()
	if ray.Dir.Dot(toTarget) < 0.999 {
		t.Errorf("center ray %v diverges from view axis %v", ray.Dir, toTarget)
	}
	if math.Abs(ray.Dir.Length()-1) > 1e-9 {
		t.Errorf("ray direction not normalized: %v", ray.Dir.Length())
	}
}

func TestScreenRayDegenerateViewport(t *testing.T) {
	cam := NewCamera()
	ray := cam.ScreenRay(10, 10, 0, 0)
	if ray.Origin != cam.Position {
		t.Error("degenerate viewport should still anchor at the camera")
	}
}

func TestIntersectSphere(t *testing.T) {
	ray := Ray{Origin: Vec3{0, 0, 10}, Dir: Vec3{0, 0, -1}}

	tHit, ok := ray.IntersectSphere(Vec3{}, 1)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(tHit-9) > 1e-9 {
		t.Errorf("front hit at t=%v, want 9", tHit)
	}

	if _, ok := ray.IntersectSphere(Vec3{5, 0, 0}, 1); ok {
		t.Error("expected a miss")
	}

	// Ray starting inside hits the far wall.
	inside := Ray{Origin: Vec3{}, Dir: Vec3{0, 0, -1}}
	tHit, ok = inside.IntersectSphere(Vec3{}, 2)
	if !ok || math.Abs(tHit-2) > 1e-9 {
		t.Errorf("inside hit = %v, %v", tHit, ok)
	}
}

func TestIntersectPlanes(t *testing.T) {
	down := Ray{Origin: Vec3{1, 5, 1}, Dir: Vec3{0, -1, 0}}
	p, ok := down.IntersectPlaneY(0)
	if !ok || !almostVec(p, Vec3{1, 0, 1}, 1e-9) {
		t.Errorf("plane y hit = %v, %v", p, ok)
	}

	// Parallel ray never lands.
	flat := Ray{Origin: Vec3{0, 5, 0}, Dir: Vec3{1, 0, 0}}
	if _, ok := flat.IntersectPlaneY(0); ok {
		t.Error("parallel ray should miss y plane")
	}

	fwd := Ray{Origin: Vec3{0, 0, 10}, Dir: Vec3{0, 0, -1}}
	p, ok = fwd.IntersectPlaneZ(3)
	if !ok || !almostVec(p, Vec3{0, 0, 3}, 1e-9) {
		t.Errorf("plane z hit = %v, %v", p, ok)
	}

	// Plane behind the origin is unreachable.
	if _, ok := fwd.IntersectPlaneZ(20); ok {
		t.Error("plane behind ray should miss")
	}
}

func TestZoomClamps(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom in unbounded: %v", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom out unbounded: %v", cam.Zoom)
	}
}
