package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Each terminal cell shows two vertically stacked samples using the upper
// half block: the top sample is the foreground, the bottom one the
// background.
const (
	runeUpperHalf = '▀'
	runeLowerHalf = '▄'
	runeFull      = '█'
)

var (
	colorBorder  = core.RGB(0x80, 0x80, 0x80)
	colorHUD     = core.RGB(0xdd, 0xdd, 0xdd)
	colorOverlay = core.RGB(0xf0, 0xd0, 0x40)
)

// CellRect is a rectangle in sample units: one column wide and half a
// terminal row tall.
type CellRect struct {
	X, Y, W, H int
}

// ToCells converts a playfield rectangle in pixels to sample units at the
// given scale (pixels per sample). The top-left edge is floored and the
// bottom-right edge is ceiled, so a non-empty rectangle always covers at
// least one sample.
func ToCells(r core.Rect, scale int) CellRect {
	scale = core.Max(scale, 1)
	if r.W == 0 || r.H == 0 {
		return CellRect{X: floorDiv(r.X, scale), Y: floorDiv(r.Y, scale)}
	}
	x0, y0 := floorDiv(r.X, scale), floorDiv(r.Y, scale)
	x1, y1 := ceilDiv(r.Right(), scale), ceilDiv(r.Bottom(), scale)
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Viewport places the playfield on the screen.
type Viewport struct {
	Scale   int // Playfield pixels per sample
	OriginX int // Screen column of the first playfield column
	OriginY int // Screen row of the first playfield row
	Cols    int // Playfield width in columns
	Rows    int // Playfield height in rows (two samples each)
}

// Samples returns the playfield height in samples.
func (v Viewport) Samples() int {
	return v.Rows * 2
}

// Frame returns the screen rectangle of the border around the playfield.
func (v Viewport) Frame() core.Rect {
	return core.NewRect(v.OriginX-1, v.OriginY-1, v.Cols+2, v.Rows+2)
}

// FitViewport picks the smallest integer scale at which the playfield fits
// a width x height screen, leaving the top row for the HUD and one cell of
// border on each side. ok is false if the screen is too small.
func FitViewport(field core.Rect, width, height int) (v Viewport, ok bool) {
	innerCols := width - 2
	innerRows := height - 3
	if innerCols < 1 || innerRows < 1 || field.W == 0 || field.H == 0 {
		return Viewport{}, false
	}

	scale := core.Max(ceilDiv(field.W, innerCols), ceilDiv(field.H, innerRows*2))
	scale = core.Max(scale, 1)

	cols := ceilDiv(field.W, scale)
	rows := ceilDiv(ceilDiv(field.H, scale), 2)

	return Viewport{
		Scale:   scale,
		OriginX: (width-cols-2)/2 + 1,
		OriginY: 2,
		Cols:    cols,
		Rows:    rows,
	}, true
}

// rasterize paints renderables onto a sample grid in list order, so later
// items cover earlier ones. Samples outside the playfield are clipped.
func rasterize(items []core.Renderable, v Viewport) [][]core.Color {
	samples := make([][]core.Color, v.Samples())
	for y := range samples {
		samples[y] = make([]core.Color, v.Cols)
	}

	visible := core.NewRect(0, 0, v.Cols*v.Scale, v.Samples()*v.Scale)
	for _, item := range items {
		if !item.Color.Active() || !visible.Intersects(item.Rect) {
			continue
		}
		c := ToCells(item.Rect, v.Scale)
		for y := core.Max(c.Y, 0); y < core.Min(c.Y+c.H, v.Samples()); y++ {
			for x := core.Max(c.X, 0); x < core.Min(c.X+c.W, v.Cols); x++ {
				samples[y][x] = item.Color
			}
		}
	}
	return samples
}

// sampleCell combines two stacked samples into one terminal cell.
func sampleCell(top, bottom core.Color) core.Cell {
	switch {
	case !top.Active() && !bottom.Active():
		return core.Cell{Rune: ' '}
	case top == bottom:
		return core.Cell{Rune: runeFull, Fg: top}
	case !top.Active():
		return core.Cell{Rune: runeLowerHalf, Fg: bottom}
	default:
		return core.Cell{Rune: runeUpperHalf, Fg: top, Bg: bottom}
	}
}

// Frame is everything needed to draw one game frame.
type Frame struct {
	Title string
	Field core.Rect
	State core.GameState
	Items []core.Renderable
}

// DrawFrame renders a game frame into the screen buffer: HUD on the first
// row, the bordered playfield below and a status overlay when the game is
// paused, lost or cleared.
func DrawFrame(s *core.Screen, f Frame) {
	s.Clear()

	v, ok := FitViewport(f.Field, s.Width(), s.Height())
	if !ok {
		s.DrawTextCentered(s.Height()/2, "terminal too small", colorHUD)
		return
	}

	drawHUD(s, f)
	s.DrawBox(v.Frame(), colorBorder)

	samples := rasterize(f.Items, v)
	for row := range v.Rows {
		for col := range v.Cols {
			s.SetCell(v.OriginX+col, v.OriginY+row, sampleCell(samples[row*2][col], samples[row*2+1][col]))
		}
	}

	switch {
	case f.State.Paused:
		drawOverlay(s, v, "PAUSED", "press p to resume")
	case f.State.BallLost:
		drawOverlay(s, v, "BALL LOST", "press r to restart")
	case f.State.Cleared:
		drawOverlay(s, v, "CLEARED", "press r to play again")
	}
}

func drawHUD(s *core.Screen, f Frame) {
	left := strings.ToUpper(f.Title)
	right := fmt.Sprintf("blocks %d  frame %d", f.State.Remaining, f.State.Frame)
	s.DrawText(1, 0, left, colorHUD)
	s.DrawText(s.Width()-len(right)-1, 0, right, colorHUD)
}

func drawOverlay(s *core.Screen, v Viewport, title, hint string) {
	w := core.Max(len(title), len(hint)) + 4
	h := 4
	box := core.NewRect(v.OriginX+(v.Cols-w)/2, v.OriginY+(v.Rows-h)/2, w, h)

	s.FillRect(box, core.Cell{Rune: ' '})
	s.DrawBox(box, colorOverlay)
	s.DrawText(box.X+(w-len(title))/2, box.Y+1, title, colorOverlay)
	s.DrawText(box.X+(w-len(hint))/2, box.Y+2, hint, colorHUD)
}

// styleKey identifies a cached lipgloss style.
type styleKey struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string for display.
// Styles are cached per color pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.fg.Active() {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.bg.Active() {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	r.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
