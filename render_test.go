package sparks

import (
	"testing"
	"time"
)

func TestAliveYieldsOnlyLiveParticles(t *testing.T) {
	s := newTestState(t, 8)
	s.Emit(3, NewParticleTypeBuilder(4, 6, time.Second).WithColor(RGB(200, 100, 50)).Build(), 10.7, -3.9)

	var got []Renderable
	for r := range s.Alive(5, 5) {
		got = append(got, r)
	}
	if len(got) != 3 {
		t.Fatalf("got %d renderables, want 3", len(got))
	}
	want := Renderable{
		Rect:  Rect{X: 15, Y: 2, W: 4, H: 6},
		Color: RGB(200, 100, 50),
		Alpha: 255,
	}
	for i, r := range got {
		if r != want {
			t.Errorf("renderable %d = %+v, want %+v", i, r, want)
		}
	}
}

func TestAliveReadsPoolLazily(t *testing.T) {
	s := newTestState(t, 4)
	seq := s.Alive(0, 0)
	s.Emit(2, movingType(time.Second, 0, 0), 0, 0)

	n := 0
	for range seq {
		n++
	}
	if n != 2 {
		t.Errorf("iterated %d particles, want 2", n)
	}
}

func TestAliveStopsEarly(t *testing.T) {
	s := newTestState(t, 4)
	s.Emit(4, movingType(time.Second, 0, 0), 0, 0)
	n := 0
	for range s.Alive(0, 0) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

func TestDrawCountsAndForwards(t *testing.T) {
	s := newTestState(t, 4)
	typ := NewParticleTypeBuilder(2, 2, 4*time.Second).
		WithEffect(ConstantRotation{Angle: 45}).
		WithEffect(FadeOut{Delay: 2 * time.Second}).
		Build()
	s.Emit(2, typ, 0, 0)
	for range 3 {
		s.Update(1)
	}

	var seen []Renderable
	n := Draw(RendererFunc(func(r Renderable) { seen = append(seen, r) }), s, 0, 0)
	if n != 2 || len(seen) != 2 {
		t.Fatalf("drew %d (%d seen), want 2", n, len(seen))
	}
	if seen[0].Alpha != 127 || seen[0].Rotation != 45 {
		t.Errorf("renderable = %+v, want alpha 127 rotation 45", seen[0])
	}
}

func TestClampAlpha(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.9, 0},
		{127.5, 127},
		{255, 255},
		{400, 255},
	}
	for _, tt := range tests {
		if got := clampAlpha(tt.in); got != tt.want {
			t.Errorf("clampAlpha(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
