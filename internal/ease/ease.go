// Package ease holds the scalar smoothing primitives both simulation
// cores share. The fixed-factor forms are deliberately framerate
// dependent: the feel is tuned for a fixed-timestep frame loop.
package ease

import "math"

// Lerp moves cur toward target by a fixed fraction.
func Lerp(cur, target, factor float64) float64 {
	return cur + (target-cur)*factor
}

// Toward moves cur toward target by rate*dt, clamped so it never
// overshoots.
func Toward(cur, target, rate, dt float64) float64 {
	f := rate * dt
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return cur + (target-cur)*f
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Near reports whether a and b agree within eps.
func Near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
