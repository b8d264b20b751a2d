package sparks

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestEmitterPathReachesTarget(t *testing.T) {
	p := NewEmitterPath(10, 20, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	p.Update(0.5)
	if p.Done {
		t.Fatal("done halfway")
	}
	if math.Abs(p.X-55) > 0.5 || math.Abs(p.Y-110) > 0.5 {
		t.Errorf("halfway = (%v, %v), want ~(55, 110)", p.X, p.Y)
	}
	x, y := p.Update(0.5)

	if !p.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-100) > 0.5 || math.Abs(y-200) > 0.5 {
		t.Errorf("end = (%v, %v), want ~(100, 200)", x, y)
	}

	// Finished paths stay put.
	x, y = p.Update(1)
	if math.Abs(x-100) > 0.5 || math.Abs(y-200) > 0.5 {
		t.Errorf("after done = (%v, %v)", x, y)
	}
}

func TestEmitterPathPingPong(t *testing.T) {
	p := NewEmitterPath(0, 0, 100, 0, 1.0, ease.Linear)
	p.PingPong = true

	p.Update(0.5)
	p.Update(0.5)
	if p.Done {
		t.Fatal("ping-pong path should never finish")
	}
	p.Update(0.5)
	if math.Abs(p.X-50) > 0.5 {
		t.Errorf("x on the way back = %v, want ~50", p.X)
	}
	p.Update(0.5)
	if math.Abs(p.X) > 0.5 {
		t.Errorf("x back at start = %v, want ~0", p.X)
	}
}

func TestEmitterPathDrivesEmission(t *testing.T) {
	s := newTestState(t, 4)
	p := NewEmitterPath(0, 0, 40, 0, 1.0, ease.Linear)
	typ := movingType(10*time.Second, 0, 0)

	for range 2 {
		x, y := p.Update(0.5)
		s.Emit(1, typ, x, y)
	}
	if math.Abs(s.At(0).X-20) > 0.5 || math.Abs(s.At(1).X-40) > 0.5 {
		t.Errorf("emitted at %v and %v, want ~20 and ~40", s.At(0).X, s.At(1).X)
	}
}
