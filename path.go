package sparks

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EmitterPath moves an emission origin between two points with an easing
// function. Call Update(dt) each frame and emit at the returned position.
// With PingPong set, the path reverses at each end instead of finishing.
type EmitterPath struct {
	X, Y     float64
	PingPong bool
	Done     bool

	tweens   [2]*gween.Tween
	from, to [2]float32
	duration float32
	fn       ease.TweenFunc
}

// NewEmitterPath creates a path from (fromX, fromY) to (toX, toY) lasting
// duration seconds.
func NewEmitterPath(fromX, fromY, toX, toY float64, duration float32, fn ease.TweenFunc) *EmitterPath {
	p := &EmitterPath{
		X:        fromX,
		Y:        fromY,
		from:     [2]float32{float32(fromX), float32(fromY)},
		to:       [2]float32{float32(toX), float32(toY)},
		duration: duration,
		fn:       fn,
	}
	p.start()
	return p
}

func (p *EmitterPath) start() {
	p.tweens[0] = gween.New(p.from[0], p.to[0], p.duration, p.fn)
	p.tweens[1] = gween.New(p.from[1], p.to[1], p.duration, p.fn)
}

// Update advances the path by dt seconds and returns the new origin.
func (p *EmitterPath) Update(dt float32) (float64, float64) {
	if p.Done {
		return p.X, p.Y
	}
	x, fx := p.tweens[0].Update(dt)
	y, fy := p.tweens[1].Update(dt)
	p.X, p.Y = float64(x), float64(y)

	if fx && fy {
		if p.PingPong {
			p.from, p.to = p.to, p.from
			p.start()
		} else {
			p.Done = true
		}
	}
	return p.X, p.Y
}
