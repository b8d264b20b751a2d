package sparks

import (
	"iter"
	"math"
	"time"

	"go.uber.org/zap"
)

// opaque is the alpha of a freshly reset particle.
const opaque = 255

// Particle is one slot of the pool. Values returned by ParticlesState.At are
// copies; mutating them does not affect the simulation.
type Particle struct {
	X, Y            float64 // position in pixels
	VX, VY          float64 // velocity in pixels per second
	AngularVelocity float64 // degrees per second
	Rotation        float64 // degrees, kept in [0, 360)
	Width, Height   uint32
	Color           Color
	Alpha           float64 // 0..255, never negative
	Fade            Fade
	Lifetime        float64 // remaining seconds; may go below zero on the frame it dies
	Alive           bool
}

// Fade holds the fade-out schedule set by a FadeOut effect.
type Fade struct {
	Enabled bool
	// Threshold is the remaining lifetime below which alpha decays.
	Threshold float64
	// Rate is the alpha lost per second inside the fade window.
	Rate float64
}

// lifetimeEpsilon absorbs the rounding left by subtracting many frame deltas,
// so a 1s particle updated ten times by 0.1 dies on the tenth frame.
const lifetimeEpsilon = 1e-9

// deadParticle is the state every slot starts in and is reset to before emission.
var deadParticle = Particle{Color: ColorWhite, Alpha: opaque}

// Stats holds cumulative pool counters.
type Stats struct {
	Capacity int
	Alive    int
	Emitted  uint64 // particles written by Emit
	Evicted  uint64 // emissions that overwrote a still-alive particle
	Died     uint64 // particles whose lifetime ran out in Update
}

// ParticlesState owns a fixed pool of particles and the emission cursor.
// Emission overwrites slots in ring order regardless of whether the slot is
// still alive; dead slots stay in place until the cursor reaches them again.
//
// ParticlesState is not safe for concurrent use. Call Emit, Update and Alive
// from the same goroutine, typically once per frame.
type ParticlesState struct {
	pool   []Particle
	cursor int
	alive  int
	stats  Stats

	log   *zap.Logger
	debug bool
}

// Option configures a ParticlesState.
type Option func(*ParticlesState)

// WithLogger sets the logger used for pool diagnostics. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *ParticlesState) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDebug enables per-frame statistics logged at debug level from Update.
func WithDebug(enabled bool) Option {
	return func(s *ParticlesState) {
		s.debug = enabled
	}
}

// NewParticlesState allocates a pool of capacity dead particles. A capacity
// below one is rejected with an error matching ErrInvalidConfiguration.
func NewParticlesState(capacity int, opts ...Option) (*ParticlesState, error) {
	if capacity < 1 {
		return nil, invalid("sparks.NewParticlesState", "capacity", "must be at least 1, got %d", capacity)
	}
	s := &ParticlesState{
		pool: make([]Particle, capacity),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.pool {
		s.pool[i] = deadParticle
	}
	s.stats.Capacity = capacity
	s.log.Debug("particle pool allocated", zap.Int("capacity", capacity))
	return s, nil
}

// Capacity returns the fixed number of slots.
func (s *ParticlesState) Capacity() int {
	return len(s.pool)
}

// Cursor returns the index of the next slot Emit will overwrite.
func (s *ParticlesState) Cursor() int {
	return s.cursor
}

// AliveCount returns the number of alive particles.
func (s *ParticlesState) AliveCount() int {
	return s.alive
}

// At returns a copy of slot i. It panics if i is out of range.
func (s *ParticlesState) At(i int) Particle {
	return s.pool[i]
}

// Stats returns the cumulative counters.
func (s *ParticlesState) Stats() Stats {
	st := s.stats
	st.Alive = s.alive
	return st
}

// Emit writes count particles of type t at (x, y), starting at the cursor
// and wrapping around the pool. Slots are overwritten even when alive, so
// emitting more than the capacity in one call keeps only the last writes.
func (s *ParticlesState) Emit(count int, t *ParticleType, x, y float64) {
	if t == nil || count <= 0 {
		return
	}
	evicted := 0
	for range count {
		p := &s.pool[s.cursor]
		if p.Alive {
			evicted++
		} else {
			s.alive++
		}

		*p = deadParticle
		p.X = x
		p.Y = y
		p.Width = t.width
		p.Height = t.height
		p.Color = t.color
		p.Alive = true
		p.Lifetime = t.lifetime

		for _, e := range t.effects {
			applyEffect(p, e)
		}

		s.cursor = (s.cursor + 1) % len(s.pool)
	}
	s.stats.Emitted += uint64(count)
	s.stats.Evicted += uint64(evicted)
	if evicted > 0 {
		if ce := s.log.Check(zap.DebugLevel, "evicted live particles"); ce != nil {
			ce.Write(zap.Int("count", evicted), zap.Int("capacity", len(s.pool)))
		}
	}
}

// Update advances every alive particle by dt seconds: it moves and rotates
// the particle, counts down its lifetime and decays alpha inside the fade
// window. Dead slots are skipped. A negative dt is treated as zero.
func (s *ParticlesState) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	died := 0
	for i := range s.pool {
		p := &s.pool[i]
		if !p.Alive {
			continue
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation = wrapDegrees(p.Rotation + p.AngularVelocity*dt)

		p.Lifetime -= dt
		if p.Lifetime <= lifetimeEpsilon {
			p.Alive = false
			died++
		}

		if p.Fade.Enabled && p.Lifetime < p.Fade.Threshold {
			// Rate is infinite or negative when the fade delay is not shorter
			// than the lifetime; Inf*0 is NaN and must not reach Alpha.
			if d := p.Fade.Rate * dt; d > 0 {
				p.Alpha -= d
			}
			if p.Alpha < 0 {
				p.Alpha = 0
			}
		}
	}

	s.alive -= died
	s.stats.Died += uint64(died)

	if s.debug {
		s.logFrame(frameStats{
			dt:         dt,
			died:       died,
			updateTime: time.Since(start),
		})
	}
}

// UpdateDuration is Update with the elapsed time as a time.Duration.
func (s *ParticlesState) UpdateDuration(d time.Duration) {
	s.Update(d.Seconds())
}

// Alive returns the renderable state of every alive particle, in slot order,
// with each rectangle shifted by (offsetX, offsetY). The pool is read while
// the sequence is iterated, not when Alive is called.
func (s *ParticlesState) Alive(offsetX, offsetY int) iter.Seq[Renderable] {
	return func(yield func(Renderable) bool) {
		for i := range s.pool {
			p := &s.pool[i]
			if !p.Alive {
				continue
			}
			if !yield(p.renderable(offsetX, offsetY)) {
				return
			}
		}
	}
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
