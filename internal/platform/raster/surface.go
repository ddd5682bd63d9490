// Package raster implements the drawing surface on an in-memory RGBA image,
// used for headless snapshots and as the reference rendering in tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/groove-run/internal/core"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Surface draws anti-aliased shapes into an *image.RGBA.
type Surface struct {
	img    *image.RGBA
	face   font.Face
	offset core.OffsetStack
}

// New creates a w by h surface.
func New(w, h int) *Surface {
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Size returns the image size in pixels.
func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole image with c.
func (s *Surface) Clear(c core.Color) {
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, xdraw.Src)
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x, y = s.offset.Apply(x, y)
	s.fill(x, y, x+w, y+h, c, func(z *vector.Rasterizer, ox, oy float32) {
		x0, y0 := float32(x)-ox, float32(y)-oy
		x1, y1 := float32(x+w)-ox, float32(y+h)-oy
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	})
}

// StrokeRect outlines a rectangle with the stroke inside its edges.
func (s *Surface) StrokeRect(x, y, w, h, width float64, c core.Color) {
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	width = math.Min(width, math.Min(w, h)/2)
	s.FillRect(x, y, w, width, c)
	s.FillRect(x, y+h-width, w, width, c)
	s.FillRect(x, y+width, width, h-2*width, c)
	s.FillRect(x+w-width, y+width, width, h-2*width, c)
}

// FillCircle fills a circle of radius r centered at (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	if r <= 0 {
		return
	}
	cx, cy = s.offset.Apply(cx, cy)
	s.fill(cx-r, cy-r, cx+r, cy+r, c, func(z *vector.Rasterizer, ox, oy float32) {
		x, y, rr := float32(cx)-ox, float32(cy)-oy, float32(r)
		k := rr * kappa
		z.MoveTo(x+rr, y)
		z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
		z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
		z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
		z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
		z.ClosePath()
	})
}

// Line draws a segment as a filled quad of the given width.
func (s *Surface) Line(x0, y0, x1, y1, width float64, c core.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	x0, y0 = s.offset.Apply(x0, y0)
	x1, y1 = s.offset.Apply(x1, y1)

	// Perpendicular half-width.
	nx, ny := -dy/length*width/2, dx/length*width/2
	minX := math.Min(x0, x1) - math.Abs(nx)
	minY := math.Min(y0, y1) - math.Abs(ny)
	maxX := math.Max(x0, x1) + math.Abs(nx)
	maxY := math.Max(y0, y1) + math.Abs(ny)

	s.fill(minX, minY, maxX, maxY, c, func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(float32(x0+nx)-ox, float32(y0+ny)-oy)
		z.LineTo(float32(x1+nx)-ox, float32(y1+ny)-oy)
		z.LineTo(float32(x1-nx)-ox, float32(y1-ny)-oy)
		z.LineTo(float32(x0-nx)-ox, float32(y0-ny)-oy)
		z.ClosePath()
	})
}

// Text draws s with its horizontal center at cx and its baseline at y.
func (s *Surface) Text(cx, y float64, text string, c core.Color) {
	if text == "" {
		return
	}
	cx, y = s.offset.Apply(cx, y)
	w := font.MeasureString(s.face, text)

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: s.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(cx))) - w/2, Y: fixed.I(int(math.Round(y)))},
	}
	d.DrawString(text)
}

// DrawImage scales img into the destination rectangle with the given
// opacity.
func (s *Surface) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	if img == nil || w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	x, y = s.offset.Apply(x, y)
	dr := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)

	var opts *xdraw.Options
	if alpha < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(core.ClampF(alpha, 0, 1)*255 + 0.5)}),
		}
	}
	xdraw.ApproxBiLinear.Scale(s.img, dr, img, img.Bounds(), xdraw.Over, opts)
}

// PushOffset translates subsequent drawing.
func (s *Surface) PushOffset(dx, dy float64) { s.offset.Push(dx, dy) }

// PopOffset undoes the last PushOffset.
func (s *Surface) PopOffset() { s.offset.Pop() }

// fill rasterizes a path inside the clipped bounding box and composites c
// over the image. path receives the box origin to subtract from coordinates.
func (s *Surface) fill(x0, y0, x1, y1 float64, c core.Color, path func(z *vector.Rasterizer, ox, oy float32)) {
	if c.A == 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.DrawOp = xdraw.Over
	path(z, float32(box.Min.X), float32(box.Min.Y))
	z.Draw(s.img, box, image.NewUniform(c.NRGBA()), image.Point{})
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path, creating parent directories.
func (s *Surface) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: cannot create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
