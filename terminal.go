package sparks

import "github.com/gdamore/tcell/v2"

// Default cell size in pixels for TerminalRenderer.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// TerminalRenderer rasterizes particles into terminal cells. A cell is lit by
// every particle whose rect overlaps it; the cell color is the particle color
// blended over Background by alpha. Cells cannot rotate, so Rotation is ignored.
type TerminalRenderer struct {
	Screen     tcell.Screen
	CellWidth  int // pixels per column, DefaultCellWidth when zero
	CellHeight int // pixels per row, DefaultCellHeight when zero
	Background Color
	Rune       rune // glyph for lit cells, '█' when zero
}

// NewTerminalRenderer returns a renderer with the default cell size on a black background.
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		Screen:     screen,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
	}
}

// Clear fills the whole screen with Background.
func (r *TerminalRenderer) Clear() {
	r.Screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(r.Background)))
}

// DrawParticle implements Renderer.
func (r *TerminalRenderer) DrawParticle(p Renderable) {
	if p.Alpha == 0 || p.Rect.W == 0 || p.Rect.H == 0 {
		return
	}
	cw, ch := r.cellSize()
	cols, rows := r.Screen.Size()

	x0 := floorDiv(p.Rect.X, cw)
	y0 := floorDiv(p.Rect.Y, ch)
	x1 := floorDiv(p.Rect.X+int(p.Rect.W)-1, cw)
	y1 := floorDiv(p.Rect.Y+int(p.Rect.H)-1, ch)

	fg := tcellColor(blend(r.Background, p.Color, p.Alpha))
	style := tcell.StyleDefault.
		Foreground(fg).
		Background(tcellColor(r.Background))
	glyph := r.Rune
	if glyph == 0 {
		glyph = '█'
	}

	for y := max(y0, 0); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			r.Screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// CellAt converts a pixel position to the cell containing it.
func (r *TerminalRenderer) CellAt(x, y int) (int, int) {
	cw, ch := r.cellSize()
	return floorDiv(x, cw), floorDiv(y, ch)
}

func (r *TerminalRenderer) cellSize() (int, int) {
	cw, ch := r.CellWidth, r.CellHeight
	if cw <= 0 {
		cw = DefaultCellWidth
	}
	if ch <= 0 {
		ch = DefaultCellHeight
	}
	return cw, ch
}

// blend composites c over bg with alpha a in 0..255.
func blend(bg, c Color, a uint8) Color {
	mix := func(b, f uint8) uint8 {
		return uint8((int(b)*(255-int(a)) + int(f)*int(a) + 127) / 255)
	}
	return Color{R: mix(bg.R, c.R), G: mix(bg.G, c.G), B: mix(bg.B, c.B)}
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
