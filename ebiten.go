package sparks

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenRenderer draws particles onto an ebiten image. Each particle is the
// source image (WhitePixel by default) stretched to its rect, rotated about
// the rect center and tinted by its color and alpha.
type EbitenRenderer struct {
	// Target is the image drawn onto. Game hosts set it to the screen every frame.
	Target *ebiten.Image
	// Image is the particle texture. Nil means WhitePixel.
	Image *ebiten.Image
	// BlendMode is the compositing operation for every particle.
	BlendMode BlendMode

	op ebiten.DrawImageOptions
}

// NewEbitenRenderer returns a renderer drawing white quads onto target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{Target: target}
}

// DrawParticle implements Renderer.
func (r *EbitenRenderer) DrawParticle(p Renderable) {
	if r.Target == nil || p.Alpha == 0 || p.Rect.W == 0 || p.Rect.H == 0 {
		return
	}
	img := r.Image
	if img == nil {
		img = WhitePixel
	}
	b := img.Bounds()

	op := &r.op
	op.GeoM = particleGeoM(p, float64(b.Dx()), float64(b.Dy()))

	// Premultiplied tint: color * alpha.
	a := float32(p.Alpha) / 255
	op.ColorScale.Reset()
	op.ColorScale.Scale(
		float32(p.Color.R)/255*a,
		float32(p.Color.G)/255*a,
		float32(p.Color.B)/255*a,
		a,
	)
	op.Blend = r.BlendMode.EbitenBlend()

	r.Target.DrawImage(img, op)
}

// particleGeoM maps a srcW x srcH image onto p.Rect rotated about its center.
func particleGeoM(p Renderable, srcW, srcH float64) ebiten.GeoM {
	w, h := float64(p.Rect.W), float64(p.Rect.H)
	var m ebiten.GeoM
	m.Scale(w/srcW, h/srcH)
	m.Translate(-w/2, -h/2)
	m.Rotate(p.Rotation * math.Pi / 180)
	m.Translate(p.Rect.Center())
	return m
}

// DrawStats prints FPS, TPS and pool occupancy in the top-left corner of dst.
func DrawStats(dst *ebiten.Image, s *ParticlesState) {
	st := s.Stats()
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nalive: %d/%d\nevicted: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), st.Alive, st.Capacity, st.Evicted))
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background is the clear color of every frame.
	Background Color
	// BlendMode is used for every particle.
	BlendMode BlendMode
	// ShowStats draws the DrawStats overlay.
	ShowStats bool
}

// FrameFunc is called once per tick before the pool is updated. Emit new
// particles from here. Returning an error stops Run with that error.
type FrameFunc func(s *ParticlesState, dt float64) error

// Run opens a window and drives s until the window closes or Escape is
// pressed: every tick it calls frame, then s.Update(1/TPS), then draws
// every alive particle.
func Run(cfg RunConfig, s *ParticlesState, frame FrameFunc) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return invalid("sparks.Run", "size", "window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(newGame(cfg, s, frame))
}

// game adapts a pool to ebiten.Game.
type game struct {
	cfg      RunConfig
	state    *ParticlesState
	frame    FrameFunc
	renderer *EbitenRenderer
	clear    color.RGBA
}

func newGame(cfg RunConfig, s *ParticlesState, frame FrameFunc) *game {
	r := NewEbitenRenderer(nil)
	r.BlendMode = cfg.BlendMode
	return &game{
		cfg:      cfg,
		state:    s,
		frame:    frame,
		renderer: r,
		clear:    cfg.Background.toRGBA(255),
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.tick(1 / float64(ebiten.TPS()))
}

// tick runs one simulation step of dt seconds.
func (g *game) tick(dt float64) error {
	if g.frame != nil {
		if err := g.frame(g.state, dt); err != nil {
			return err
		}
	}
	g.state.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.renderer.Target = screen
	Draw(g.renderer, g.state, 0, 0)
	if g.cfg.ShowStats {
		DrawStats(screen, g.state)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
