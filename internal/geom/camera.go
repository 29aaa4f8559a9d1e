package geom

import "math"

// Camera manages 3D projection to a 2D plane and the inverse:
// unprojecting screen coordinates back into world-space rays for
// hit-testing and drag-plane intersection.
type Camera struct {
	Position, Target, Up Vec3
	FOV, Near, Far       float64
	Zoom                 float64
}

func NewCamera() *Camera {
	return &Camera{
		Position: Vec3{0, 4, 8},
		Target:   Vec3{0, 0, 0},
		Up:       Vec3{0, 1, 0},
		FOV:      math.Pi / 4,
		Near:     0.1,
		Far:      1000,
		Zoom:     1.0,
	}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// ZoomFactor reports the current zoom so drag sensitivity can be
// scaled to feel the same at any camera distance.
func (c *Camera) ZoomFactor() float64 {
	if c.Zoom <= 0 {
		return 1.0
	}
	return c.Zoom
}

// basis returns the right/up/forward view vectors.
func (c *Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	if forward.Length() == 0 {
		forward = Vec3{0, 0, -1}
	}
	right = forward.Cross(c.Up).Normalize()
	if right.Length() == 0 {
		right = Vec3{1, 0, 0}
	}
	up = right.Cross(forward)
	return
}

// Ray is a world-space origin plus unit direction.
type Ray struct {
	Origin, Dir Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// ScreenRay converts pixel coordinates on a w*h surface into a
// world-space ray through the camera. Pixel origin is top-left.
func (c *Camera) ScreenRay(px, py float64, w, h int) Ray {
	if w <= 0 || h <= 0 {
		return Ray{Origin: c.Position, Dir: Vec3{0, 0, -1}}
	}
	// NDC in [-1,1], y up.
	nx := (2*px/float64(w) - 1)
	ny := (1 - 2*py/float64(h))

	tanHalf := math.Tan(c.FOV/2) / c.Zoom
	aspect := float64(w) / float64(h)

	right, up, forward := c.basis()
	dir := forward.
		Add(right.Scale(nx * tanHalf * aspect)).
		Add(up.Scale(ny * tanHalf)).
		Normalize()
	return Ray{Origin: c.Position, Dir: dir}
}

// IntersectSphere returns the nearest positive ray parameter hitting
// the sphere, or ok=false if the ray misses.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	cc := oc.Dot(oc) - radius*radius
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlaneY intersects the ray with the horizontal plane y=y0.
func (r Ray) IntersectPlaneY(y0 float64) (Vec3, bool) {
	if math.Abs(r.Dir.Y) < 1e-12 {
		return Vec3{}, false
	}
	t := (y0 - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return Vec3{}, false
	}
	return r.At(t), true
}

// IntersectPlaneZ intersects the ray with the vertical plane z=z0.
func (r Ray) IntersectPlaneZ(z0 float64) (Vec3, bool) {
	if math.Abs(r.Dir.Z) < 1e-12 {
		return Vec3{}, false
	}
	t := (z0 - r.Origin.Z) / r.Dir.Z
	if t < 0 {
		return Vec3{}, false
	}
	return r.At(t), true
}
