package sparks

import "time"

// ParticleType is an immutable emission template. Create one with
// ParticleTypeBuilder and pass it to ParticlesState.Emit as often as needed.
type ParticleType struct {
	effects  []ParticleEffect
	lifetime float64 // seconds
	width    uint32
	height   uint32
	color    Color
}

// Effects returns a copy of the effects in application order.
func (t *ParticleType) Effects() []ParticleEffect {
	out := make([]ParticleEffect, len(t.effects))
	copy(out, t.effects)
	return out
}

// Lifetime returns the lifetime given to each emitted particle.
func (t *ParticleType) Lifetime() time.Duration {
	return time.Duration(t.lifetime * float64(time.Second))
}

// Size returns the particle width and height in pixels.
func (t *ParticleType) Size() (uint32, uint32) {
	return t.width, t.height
}

// Color returns the base color of emitted particles.
func (t *ParticleType) Color() Color {
	return t.color
}

// ParticleTypeBuilder accumulates the fields of a ParticleType.
//
//	spark := sparks.NewParticleTypeBuilder(4, 4, 2*time.Second).
//		WithColor(sparks.RGB(255, 200, 40)).
//		WithEffect(sparks.LinearMovement{VelocityX: 30, VelocityY: -120}).
//		WithEffect(sparks.FadeOut{Delay: time.Second}).
//		Build()
type ParticleTypeBuilder struct {
	effects  []ParticleEffect
	lifetime time.Duration
	width    uint32
	height   uint32
	color    Color
}

// NewParticleTypeBuilder returns a builder for white particles of the given
// size and lifetime with no effects.
func NewParticleTypeBuilder(width, height uint32, lifetime time.Duration) *ParticleTypeBuilder {
	return &ParticleTypeBuilder{
		lifetime: lifetime,
		width:    width,
		height:   height,
		color:    ColorWhite,
	}
}

// WithColor sets the base color.
func (b *ParticleTypeBuilder) WithColor(c Color) *ParticleTypeBuilder {
	b.color = c
	return b
}

// WithEffect appends an effect. Effects are applied in the order they were added.
// A nil effect, including a nil *FadeOut or other nil effect pointer, is ignored.
func (b *ParticleTypeBuilder) WithEffect(e ParticleEffect) *ParticleTypeBuilder {
	if !isNilEffect(e) {
		b.effects = append(b.effects, e)
	}
	return b
}

// Build returns a ParticleType holding a copy of the accumulated fields.
// Later changes to the builder do not affect the returned type.
func (b *ParticleTypeBuilder) Build() *ParticleType {
	effects := make([]ParticleEffect, len(b.effects))
	copy(effects, b.effects)
	return &ParticleType{
		effects:  effects,
		lifetime: b.lifetime.Seconds(),
		width:    b.width,
		height:   b.height,
		color:    b.color,
	}
}
