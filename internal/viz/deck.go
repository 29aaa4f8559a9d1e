// Package viz renders session snapshots onto a braille canvas for the
// terminal views: a stylized deck with platter, tonearm and the disc
// wherever its physics put it.
package viz

import (
	"math"

	"github.com/san-kum/platterlab/internal/session"
)

const worldScale = 14.0 // sub-pixels per world unit

// RenderDeck draws one frame of the turntable onto the canvas.
func RenderDeck(c *Canvas, f session.FrameState) {
	c.Clear()

	w := c.Width * 2
	h := c.Height * 4

	// Platter sits left of center, pivot hardware on the right.
	px := int(float64(w) * 0.38)
	py := h / 2
	pr := float64(h) * 0.30

	c.DrawCircle(px, py, pr)
	c.Set(px, py)

	// Spin marker riding the platter edge.
	ma := f.VinylRotationY
	c.Set(px+int(math.Cos(ma)*pr*1.6), py+int(math.Sin(ma)*pr*0.8))

	// Tonearm: pivot on the right, yaw swings the arm over the
	// platter. Zero yaw parks it alongside.
	ax := int(float64(w) * 0.82)
	ay := int(float64(h) * 0.22)
	armLen := float64(h) * 0.55
	angle := (120 + f.Yaw*2.2) * math.Pi / 180
	nx := ax + int(math.Cos(angle)*armLen)
	ny := ay + int(math.Sin(angle)*armLen*0.5)
	c.DrawLine(ax, ay, nx, ny)
	c.Set(nx, ny+1)

	// The disc, offset from the spindle by its physics position.
	dx := px + int(f.VinylPos.X*worldScale)
	dy := py - int((f.VinylPos.Y-0.06)*worldScale*0.5)
	dr := pr * 0.85
	if f.VinylHeld || f.VinylReturning {
		dr = pr * 0.7
	}
	c.DrawCircle(dx, dy, dr)
	c.Set(dx, dy)
}
