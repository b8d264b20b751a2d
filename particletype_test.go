package sparks

import (
	"testing"
	"time"
)

func TestBuilderDefaults(t *testing.T) {
	typ := NewParticleTypeBuilder(16, 8, 3*time.Second).Build()
	if typ.Color() != ColorWhite {
		t.Errorf("color = %v, want white", typ.Color())
	}
	if len(typ.Effects()) != 0 {
		t.Errorf("effects = %v, want none", typ.Effects())
	}
	if w, h := typ.Size(); w != 16 || h != 8 {
		t.Errorf("size = %dx%d, want 16x8", w, h)
	}
	if typ.Lifetime() != 3*time.Second {
		t.Errorf("lifetime = %v, want 3s", typ.Lifetime())
	}
}

func TestBuilderKeepsEffectOrder(t *testing.T) {
	typ := NewParticleTypeBuilder(1, 1, time.Second).
		WithColor(RGB(1, 2, 3)).
		WithEffect(FadeOut{Delay: 100 * time.Millisecond}).
		WithEffect(nil).
		WithEffect(LinearMovement{VelocityX: 1}).
		WithEffect(ConstantRotation{Angle: 90}).
		Build()

	want := []ParticleEffect{
		FadeOut{Delay: 100 * time.Millisecond},
		LinearMovement{VelocityX: 1},
		ConstantRotation{Angle: 90},
	}
	got := typ.Effects()
	if len(got) != len(want) {
		t.Fatalf("effects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("effect %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if typ.Color() != RGB(1, 2, 3) {
		t.Errorf("color = %v", typ.Color())
	}
}

func TestBuildCopiesFields(t *testing.T) {
	b := NewParticleTypeBuilder(1, 1, time.Second).
		WithEffect(LinearRotation{AngularVelocity: 5})
	typ := b.Build()

	b.WithEffect(LinearMovement{VelocityX: 9}).WithColor(RGB(9, 9, 9))
	if n := len(typ.Effects()); n != 1 {
		t.Errorf("built type has %d effects after builder changed, want 1", n)
	}
	if typ.Color() != ColorWhite {
		t.Errorf("built type color changed to %v", typ.Color())
	}

	effects := typ.Effects()
	effects[0] = ConstantRotation{}
	if _, ok := typ.Effects()[0].(LinearRotation); !ok {
		t.Error("Effects should return a copy")
	}
}

func TestPointerEffects(t *testing.T) {
	s := newTestState(t, 1)
	typ := NewParticleTypeBuilder(1, 1, 4*time.Second).
		WithEffect(&ConstantRotation{Angle: 30}).
		WithEffect(&LinearMovement{VelocityX: 2, VelocityY: 3}).
		WithEffect(&LinearRotation{AngularVelocity: 4}).
		WithEffect(&FadeOut{Delay: 2 * time.Second}).
		Build()
	s.Emit(1, typ, 0, 0)

	p := s.At(0)
	if p.Rotation != 30 || p.VX != 2 || p.VY != 3 || p.AngularVelocity != 4 {
		t.Errorf("pointer effects not applied: %+v", p)
	}
	assertNear(t, "fade rate", p.Fade.Rate, 128)
}

func TestBuilderIgnoresNilEffects(t *testing.T) {
	typ := NewParticleTypeBuilder(1, 1, 2*time.Second).
		WithEffect(nil).
		WithEffect((*FadeOut)(nil)).
		WithEffect((*ConstantRotation)(nil)).
		WithEffect((*LinearMovement)(nil)).
		WithEffect((*LinearRotation)(nil)).
		WithEffect(LinearMovement{VelocityX: 1}).
		Build()
	if n := len(typ.Effects()); n != 1 {
		t.Fatalf("effects = %d, want 1", n)
	}

	s := newTestState(t, 1)
	s.Emit(1, typ, 0, 0)
	p := s.At(0)
	if !p.Alive || p.VX != 1 || p.Fade.Enabled {
		t.Errorf("emitted particle = %+v", p)
	}
}

func TestApplyNilEffectPointer(t *testing.T) {
	p := deadParticle
	p.Lifetime = 1
	applyEffect(&p, (*FadeOut)(nil))
	applyEffect(&p, (*LinearMovement)(nil))
	if p.Fade.Enabled || p.VX != 0 {
		t.Errorf("nil effect changed particle: %+v", p)
	}
}
