package sparks

import "math"

// Renderable is the read-only view of an alive particle handed to a Renderer.
type Renderable struct {
	Rect     Rect
	Rotation float64 // degrees, clockwise about the rect center
	Color    Color
	Alpha    uint8
}

// Renderer draws particles. Implementations must alpha-blend, modulate a
// white quad by Color and rotate it about the center of Rect.
type Renderer interface {
	DrawParticle(r Renderable)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(r Renderable)

// DrawParticle calls f(r).
func (f RendererFunc) DrawParticle(r Renderable) {
	f(r)
}

// Draw hands every alive particle of s to r, shifted by (offsetX, offsetY).
// It returns the number of particles drawn.
func Draw(r Renderer, s *ParticlesState, offsetX, offsetY int) int {
	n := 0
	for p := range s.Alive(offsetX, offsetY) {
		r.DrawParticle(p)
		n++
	}
	return n
}

func (p *Particle) renderable(offsetX, offsetY int) Renderable {
	return Renderable{
		Rect: Rect{
			X: int(p.X) + offsetX,
			Y: int(p.Y) + offsetY,
			W: p.Width,
			H: p.Height,
		},
		Rotation: p.Rotation,
		Color:    p.Color,
		Alpha:    clampAlpha(p.Alpha),
	}
}

// clampAlpha converts a particle alpha to the 0..255 range renderers accept.
func clampAlpha(a float64) uint8 {
	switch {
	case a <= 0 || math.IsNaN(a):
		return 0
	case a >= 255:
		return 255
	default:
		return uint8(a)
	}
}
