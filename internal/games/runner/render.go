package runner

import (
	"math"

	"github.com/vovakirdan/groove-run/internal/core"
)

// RenderOptions carries host-level render inputs that are not simulation
// state.
type RenderOptions struct {
	Debug  bool        // Draw hitbox outlines
	Assets AssetSource // Nil means no sprites; fallbacks are drawn
}

// Background layout
const (
	trackLines    = 3
	trackSpacing  = 40
	trackOffset   = 30
	trackDash     = 20
	trackGap      = 15
	starCount     = 50
	streakCount   = 5
	streakLength  = 100
	backdropSize  = 80
	backdropAlpha = 0.15
	backdropWrap  = 150
	backdropLead  = 100
	labelRise     = 5
	shadowHeight  = 10
)

// backdropSpots are the base positions of the translucent wall art.
var backdropSpots = [...][2]float64{{200, 50}, {500, 100}, {800, 70}}

// Render draws the current state. It reads the session and never changes it.
func (s *Session) Render(dst core.Surface, opts RenderOptions) {
	dst.Clear(core.ColorSky)

	sh := s.world.Shake
	dst.PushOffset(sh.X, sh.Y)

	s.drawBackground(dst, opts)
	s.drawGround(dst)

	for _, o := range s.world.Obstacles {
		dst.FillRect(o.X, o.Y, o.W, o.H, o.Kind.Color())
		if opts.Debug {
			dst.StrokeRect(o.X, o.Y, o.W, o.H, 2, core.ColorRed)
		}
		dst.Text(o.X+o.W/2, o.Y-labelRise, o.Kind.Label(), core.ColorWhite)
	}

	for _, c := range s.world.Collectibles {
		cx, cy := c.Box().Center()
		dst.FillCircle(cx, cy, c.W/2, core.ColorGold)
		dst.Text(cx, cy+5, "$", core.ColorBlack)
	}

	s.drawPlayer(dst, opts)

	radius := s.cfg.Particles.Radius
	for _, p := range s.world.Particles {
		dst.FillCircle(p.X, p.Y, radius, p.Color.WithAlpha(p.Life))
	}

	dst.PopOffset()
}

// drawBackground draws the purely cosmetic scrolling decoration. Every
// position is derived from the tick counter.
func (s *Session) drawBackground(dst core.Surface, opts RenderOptions) {
	w, h := s.runtime.SurfaceW, s.runtime.SurfaceH
	tick := float64(s.tick)

	// Dashed track lines
	period := float64(trackDash + trackGap)
	start := math.Mod(tick*s.speed*2, period) - period
	for i := 0; i < trackLines; i++ {
		y := s.groundLine() - trackOffset - float64(i*trackSpacing)
		for x := start; x < w; x += period {
			dst.Line(x, y, math.Min(x+trackDash, w), y, 3, core.ColorTrack)
		}
	}

	// Wall art, when loaded
	if opts.Assets != nil {
		if img, ok := opts.Assets.Backdrop(); ok {
			span := w + backdropWrap
			for _, spot := range backdropSpots {
				offset := spot[0] - tick*1.5
				x := math.Mod(math.Mod(offset, span)+span, span) - backdropLead
				if x > -backdropLead && x < w {
					dst.DrawImage(img, x, spot[1], backdropSize, backdropSize, backdropAlpha)
				}
			}
		}
	}

	// Stars
	for i := 0; i < starCount; i++ {
		x := math.Mod(float64(i*137)+tick*2, w)
		y := math.Mod(float64(i*97), h)
		dst.FillRect(x, y, 2, 2, core.ColorStar)
	}

	// Speed streaks
	for i := 0; i < streakCount; i++ {
		y := math.Mod(float64(i*80)+tick*3, h)
		dst.Line(w, y, w-streakLength, y, 2, core.ColorStreak)
	}
}

// drawGround draws the ground strip and its edge line.
func (s *Session) drawGround(dst core.Surface) {
	top := s.groundLine()
	dst.FillRect(0, top, s.runtime.SurfaceW, s.cfg.Surface.GroundHeight, core.ColorGround)
	dst.Line(0, top, s.runtime.SurfaceW, top, 2, core.ColorGold)
}

// drawPlayer draws the shadow, then the sprite frame or its fallback.
func (s *Session) drawPlayer(dst core.Surface, opts RenderOptions) {
	p := s.world.Player
	cfg := s.cfg.Player

	shadowW := p.W * 0.8
	dst.FillRect(p.X+(p.W-shadowW)/2, p.Y+p.H, shadowW, shadowHeight, core.ColorShadow)

	drawn := false
	if opts.Assets != nil && opts.Assets.FramesReady(p.Animation()) {
		if img, ok := opts.Assets.Frame(p.Animation(), p.Frame); ok {
			// Sprite is larger than the hitbox: centered horizontally,
			// bottom-aligned.
			offX := (cfg.SpriteWidth - p.W) / 2
			offY := cfg.SpriteHeight - p.H
			dst.DrawImage(img, p.X-offX, p.Y-offY, cfg.SpriteWidth, cfg.SpriteHeight, 1)
			drawn = true
		}
	}
	if !drawn {
		dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorPlayer)
	}

	if opts.Debug {
		dst.StrokeRect(p.X, p.Y, p.W, p.H, 2, core.ColorGreen)
	}
}
