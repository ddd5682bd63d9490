// Package window hosts the runner in an ebiten window on desktop and mobile.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/groove-run/internal/core"
)

// Surface draws onto an ebiten image. The target is swapped in every Draw.
type Surface struct {
	target *ebiten.Image
	face   font.Face
	offset core.OffsetStack

	// Decoded assets converted to GPU images once.
	images map[image.Image]*ebiten.Image
}

// NewSurface creates a surface without a target.
func NewSurface() *Surface {
	return &Surface{
		face:   basicfont.Face7x13,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget selects the image subsequent calls draw on.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.target = dst
}

// Size returns the target size in pixels.
func (s *Surface) Size() (float64, float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear(c core.Color) {
	s.target.Fill(c.NRGBA())
}

func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	x, y = s.offset.Apply(x, y)
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), true)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c core.Color) {
	x, y = s.offset.Apply(x, y)
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(width), c.NRGBA(), true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	cx, cy = s.offset.Apply(cx, cy)
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c.NRGBA(), true)
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c core.Color) {
	x0, y0 = s.offset.Apply(x0, y0)
	x1, y1 = s.offset.Apply(x1, y1)
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(), true)
}

// Text draws str centered on cx with its baseline at y.
func (s *Surface) Text(cx, y float64, str string, c core.Color) {
	cx, y = s.offset.Apply(cx, y)
	w := font.MeasureString(s.face, str).Round()
	text.Draw(s.target, str, s.face, int(cx)-w/2, int(y), c.NRGBA())
}

// DrawImage scales img into the destination rectangle.
func (s *Surface) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	if img == nil {
		return
	}
	src := s.image(img)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	x, y = s.offset.Apply(x, y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(src, op)
}

func (s *Surface) PushOffset(dx, dy float64) { s.offset.Push(dx, dy) }

func (s *Surface) PopOffset() { s.offset.Pop() }

func (s *Surface) image(img image.Image) *ebiten.Image {
	if e, ok := s.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.images[img] = e
	return e
}
