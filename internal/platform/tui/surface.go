package tui

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/groove-run/internal/core"
)

// Shade runes by coverage, lightest first.
var shades = [...]rune{'░', '▒', '▓', '█'}

// CellSurface draws a pixel-space scene onto a character Screen. The logical
// surface size is fixed; each cell covers w/cols by h/rows pixels.
type CellSurface struct {
	screen *core.Screen
	w, h   float64
	offset core.OffsetStack
}

// NewCellSurface creates a surface of logical size w by h pixels backed by
// screen.
func NewCellSurface(screen *core.Screen, w, h float64) *CellSurface {
	return &CellSurface{screen: screen, w: w, h: h}
}

// Size returns the logical size in pixels.
func (s *CellSurface) Size() (float64, float64) { return s.w, s.h }

// Screen returns the backing buffer.
func (s *CellSurface) Screen() *core.Screen { return s.screen }

// CellSize returns the pixel extent of one cell.
func (s *CellSurface) CellSize() (float64, float64) {
	cols, rows := s.screen.Width(), s.screen.Height()
	if cols == 0 || rows == 0 {
		return s.w, s.h
	}
	return s.w / float64(cols), s.h / float64(rows)
}

// Clear blanks every cell. The terminal background stands in for c.
func (s *CellSurface) Clear(core.Color) {
	s.screen.Clear()
}

// FillRect shades every cell whose center lies inside the rectangle. A
// rectangle too small to cover any center still marks the cell it starts in.
func (s *CellSurface) FillRect(x, y, w, h float64, c core.Color) {
	if !c.Visible() || w <= 0 || h <= 0 {
		return
	}
	x, y = s.offset.Apply(x, y)
	r := shadeFor(c)

	c0, r0, c1, r1 := s.span(x, y, w, h)
	if c1 < c0 || r1 < r0 {
		s.set(s.col(x), s.row(y), r, c)
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.set(col, row, r, c)
		}
	}
}

// StrokeRect outlines the cells covered by the rectangle.
func (s *CellSurface) StrokeRect(x, y, w, h, _ float64, c core.Color) {
	if !c.Visible() {
		return
	}
	x, y = s.offset.Apply(x, y)
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+w-1e-9), s.row(y+h-1e-9)

	for col := c0; col <= c1; col++ {
		s.set(col, r0, '─', c)
		s.set(col, r1, '─', c)
	}
	for row := r0; row <= r1; row++ {
		s.set(c0, row, '│', c)
		s.set(c1, row, '│', c)
	}
	s.set(c0, r0, '┌', c)
	s.set(c1, r0, '┐', c)
	s.set(c0, r1, '└', c)
	s.set(c1, r1, '┘', c)
}

// FillCircle fills cells whose centers lie within r. Circles smaller than a
// cell become a dot.
func (s *CellSurface) FillCircle(cx, cy, r float64, c core.Color) {
	if !c.Visible() || r <= 0 {
		return
	}
	cx, cy = s.offset.Apply(cx, cy)
	cw, ch := s.CellSize()

	if 2*r < cw || 2*r < ch {
		s.set(s.col(cx), s.row(cy), dotFor(c), c)
		return
	}

	glyph := shadeFor(c)
	c0, r0, c1, r1 := s.span(cx-r, cy-r, 2*r, 2*r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * cw
			py := (float64(row) + 0.5) * ch
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				s.set(col, row, glyph, c)
			}
		}
	}
}

// Line draws a straight line between cell positions.
func (s *CellSurface) Line(x0, y0, x1, y1, _ float64, c core.Color) {
	if !c.Visible() {
		return
	}
	x0, y0 = s.offset.Apply(x0, y0)
	x1, y1 = s.offset.Apply(x1, y1)

	ca, ra := s.col(x0), s.row(y0)
	cb, rb := s.col(x1), s.row(y1)

	glyph := '·'
	switch {
	case ra == rb:
		glyph = '─'
	case ca == cb:
		glyph = '│'
	}
	if c.A < 0x80 && glyph == '─' {
		glyph = '╌'
	}

	dc, dr := core.Abs(cb-ca), -core.Abs(rb-ra)
	sc, sr := sign(cb-ca), sign(rb-ra)
	e := dc + dr
	for {
		s.set(ca, ra, glyph, c)
		if ca == cb && ra == rb {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			ca += sc
		}
		if e2 <= dc {
			e += dc
			ra += sr
		}
	}
}

// Text writes s centered on cx in the row containing y.
func (s *CellSurface) Text(cx, y float64, text string, c core.Color) {
	cx, y = s.offset.Apply(cx, y)
	runes := []rune(text)
	start := s.col(cx) - len(runes)/2
	row := s.row(y)
	for i, r := range runes {
		s.set(start+i, row, r, c)
	}
}

// DrawImage samples img at each covered cell center and shades the cell
// with the sampled colour.
func (s *CellSurface) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	if img == nil || w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	x, y = s.offset.Apply(x, y)
	b := img.Bounds()
	cw, ch := s.CellSize()

	c0, r0, c1, r1 := s.span(x, y, w, h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			u := ((float64(col)+0.5)*cw - x) / w
			v := ((float64(row)+0.5)*ch - y) / h
			px := b.Min.X + int(u*float64(b.Dx()))
			py := b.Min.Y + int(v*float64(b.Dy()))
			nc := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)

			cc := core.RGBA(nc.R, nc.G, nc.B, float64(nc.A)/255*alpha)
			if cc.Visible() {
				s.set(col, row, shadeFor(cc), cc)
			}
		}
	}
}

// PushOffset translates subsequent drawing.
func (s *CellSurface) PushOffset(dx, dy float64) { s.offset.Push(dx, dy) }

// PopOffset undoes the last PushOffset.
func (s *CellSurface) PopOffset() { s.offset.Pop() }

// col maps a pixel x to a column.
func (s *CellSurface) col(x float64) int {
	cw, _ := s.CellSize()
	return int(math.Floor(x / cw))
}

// row maps a pixel y to a row.
func (s *CellSurface) row(y float64) int {
	_, ch := s.CellSize()
	return int(math.Floor(y / ch))
}

// span returns the inclusive cell range whose centers fall inside the rect.
func (s *CellSurface) span(x, y, w, h float64) (c0, r0, c1, r1 int) {
	cw, ch := s.CellSize()
	c0 = int(math.Ceil(x/cw - 0.5))
	r0 = int(math.Ceil(y/ch - 0.5))
	c1 = int(math.Ceil((x+w)/cw-0.5)) - 1
	r1 = int(math.Ceil((y+h)/ch-0.5)) - 1
	return c0, r0, c1, r1
}

// set writes a cell, storing the colour opaque since terminals cannot blend.
func (s *CellSurface) set(col, row int, r rune, c core.Color) {
	c.A = 0xff
	s.screen.SetCell(col, row, r, c)
}

// shadeFor picks a block rune by opacity.
func shadeFor(c core.Color) rune {
	i := int(c.A) * len(shades) / 256
	return shades[core.Clamp(i, 0, len(shades)-1)]
}

// dotFor picks a point rune by opacity.
func dotFor(c core.Color) rune {
	if c.A < 0x80 {
		return '·'
	}
	return '•'
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
