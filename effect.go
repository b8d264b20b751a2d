package sparks

import "time"

// ParticleEffect is a template modifier applied once to each particle at
// emission, after the base fields are assigned. The set of effects is closed:
// ConstantRotation, LinearMovement, LinearRotation and FadeOut.
type ParticleEffect interface {
	particleEffect()
}

// ConstantRotation sets the initial rotation in degrees.
type ConstantRotation struct {
	Angle float64
}

// LinearMovement sets the velocity in pixels per second.
type LinearMovement struct {
	VelocityX, VelocityY float64
}

// LinearRotation sets the angular velocity in degrees per second.
type LinearRotation struct {
	AngularVelocity float64
}

// FadeOut starts fading Delay before the particle dies. The fade rate is
// 256 / (lifetime - Delay) alpha units per second, so Delay must be shorter
// than the particle lifetime.
type FadeOut struct {
	Delay time.Duration
}

func (ConstantRotation) particleEffect() {}
func (LinearMovement) particleEffect()   {}
func (LinearRotation) particleEffect()   {}
func (FadeOut) particleEffect()          {}

// fadeRange is the alpha span a full fade covers.
const fadeRange = 256

// applyEffect mutates p according to e. p.Lifetime must already hold the
// template lifetime because FadeOut derives its window from it.
func applyEffect(p *Particle, e ParticleEffect) {
	switch e := e.(type) {
	case ConstantRotation:
		p.Rotation = e.Angle
	case LinearMovement:
		p.VX = e.VelocityX
		p.VY = e.VelocityY
	case LinearRotation:
		p.AngularVelocity = e.AngularVelocity
	case FadeOut:
		start := p.Lifetime - e.Delay.Seconds()
		p.Fade = Fade{
			Enabled:   true,
			Threshold: start,
			Rate:      fadeRange / start,
		}
	case *ConstantRotation:
		if e != nil {
			applyEffect(p, *e)
		}
	case *LinearMovement:
		if e != nil {
			applyEffect(p, *e)
		}
	case *LinearRotation:
		if e != nil {
			applyEffect(p, *e)
		}
	case *FadeOut:
		if e != nil {
			applyEffect(p, *e)
		}
	}
}

// isNilEffect reports whether e is nil or a nil pointer to one of the effects.
func isNilEffect(e ParticleEffect) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *ConstantRotation:
		return e == nil
	case *LinearMovement:
		return e == nil
	case *LinearRotation:
		return e == nil
	case *FadeOut:
		return e == nil
	}
	return false
}
