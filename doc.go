// Package sparks is a fixed-capacity particle pool for frame-stepped visual
// effects (sparks, trails, fades) on [Ebitengine] or in a terminal via [tcell].
//
// # Quick start
//
// Describe a particle once with a [ParticleTypeBuilder], emit it into a
// [ParticlesState], advance the pool once per frame and hand the alive
// particles to a [Renderer]:
//
//	pool, err := sparks.NewParticlesState(250)
//	if err != nil {
//		log.Fatal(err)
//	}
//	spark := sparks.NewParticleTypeBuilder(16, 16, 2*time.Second).
//		WithColor(sparks.RGB(255, 160, 0)).
//		WithEffect(sparks.LinearMovement{VelocityX: 20, VelocityY: -200}).
//		WithEffect(sparks.LinearRotation{AngularVelocity: 60}).
//		WithEffect(sparks.FadeOut{Delay: time.Second}).
//		Build()
//
//	// every frame
//	pool.Emit(5, spark, 400, 600)
//	pool.Update(dt)
//	sparks.Draw(renderer, pool, 0, 0)
//
// [Run] wraps this loop in an ebiten window.
//
// # Pool semantics
//
// The pool never grows. Emit writes into the slot under the emission cursor
// and advances it modulo the capacity, overwriting the slot even when its
// particle is still alive. Dead particles stay in their slots and are skipped
// by Update and Alive until the cursor reaches them again.
//
// Effects are applied at emission in the order they were added to the
// builder, after position, size, color and lifetime are assigned. [FadeOut]
// reads that lifetime: alpha starts at 255 and, once the remaining lifetime
// drops below lifetime-delay, loses 256/(lifetime-delay) units per second.
// A delay that is not shorter than the lifetime is a caller error; the core
// does not check it, [Config.Presets] does.
//
// # Presets
//
// [LoadConfig] reads pool, logging and preset settings from TOML or YAML:
//
//	[pool]
//	capacity = 650
//
//	[presets.ember]
//	width = 16
//	height = 16
//	lifetime = 2.0
//	color = [255, 80, 0]
//
//	[[presets.ember.effects]]
//	kind = "linear_movement"
//	velocity_y = -200.0
//
//	[[presets.ember.effects]]
//	kind = "fade_out"
//	delay = 1.0
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
package sparks
