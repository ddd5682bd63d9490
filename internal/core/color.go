package core

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA colour shared by every drawing surface.
// Terminal surfaces ignore alpha below a visibility threshold; raster
// surfaces blend with it.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a colour with the given alpha in [0, 1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{R: r, G: g, B: b, A: alphaByte(alpha)}
}

// WithAlpha returns c with its alpha scaled by f, where f is in [0, 1].
func (c Color) WithAlpha(f float64) Color {
	c.A = uint8(float64(c.A) * ClampF(f, 0, 1))
	return c
}

// NRGBA converts to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex returns the "#rrggbb" form, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Visible reports whether the colour is opaque enough to show on a surface
// that cannot blend.
func (c Color) Visible() bool {
	return c.A >= 0x20
}

func alphaByte(a float64) uint8 {
	return uint8(ClampF(a, 0, 1)*255 + 0.5)
}

// Palette used by the runner.
var (
	ColorDefault  = RGB(0xdf, 0xe6, 0xe9)
	ColorBlack    = RGB(0x00, 0x00, 0x00)
	ColorWhite    = RGB(0xff, 0xff, 0xff)
	ColorGold     = RGB(0xff, 0xd7, 0x00)
	ColorRed      = RGB(0xff, 0x00, 0x00)
	ColorGreen    = RGB(0x00, 0xff, 0x00)
	ColorPlayer   = RGB(0xff, 0x6b, 0x35)
	ColorGround   = RGB(0x2d, 0x34, 0x36)
	ColorSky      = RGB(0x1a, 0x1a, 0x2e)
	ColorFUD      = RGB(0xe7, 0x4c, 0x3c)
	ColorBear     = RGB(0xc0, 0x39, 0x2b)
	ColorFOMO     = RGB(0x9b, 0x59, 0xb6)
	ColorRug      = RGB(0xe6, 0x7e, 0x22)
	ColorShadow   = RGBA(0x00, 0x00, 0x00, 0.2)
	ColorTrack    = RGBA(0xff, 0xd7, 0x00, 0.3)
	ColorStar     = RGBA(0xff, 0xff, 0xff, 0.3)
	ColorStreak   = RGBA(0xff, 0xd7, 0x00, 0.2)
	ColorBackdrop = RGBA(0xff, 0xff, 0xff, 0.15)
)
