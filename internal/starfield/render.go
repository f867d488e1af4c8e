package starfield

import (
	"image/color"
	"math"

	"github.com/iburimskiy/portfolio/internal/config"
)

// Surface is a 2D raster target sized to the viewport.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Fill(c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

var (
	background = MustHex(config.Background)
	glowColors = func() []color.NRGBA {
		out := make([]color.NRGBA, len(config.Glows))
		for i, g := range config.Glows {
			out[i] = MustHex(g.Color)
		}
		return out
	}()
)

// Render paints one frame of st onto s.
func Render(s Surface, st *State) {
	DrawBackdrop(s, st.Width, st.Height)
	for i := range st.Particles {
		p := &st.Particles[i]
		if p.HasHalo() {
			s.FillCircle(p.X, p.Y, p.Radius*config.HaloScale, WithAlpha(p.Color, p.Opacity*config.HaloAlpha))
		}
		s.FillCircle(p.X, p.Y, p.Radius, WithAlpha(p.Color, p.Opacity))
	}
}

// DrawBackdrop clears s and lays down the two stationary glows. It does not
// depend on any particle state.
func DrawBackdrop(s Surface, w, h float64) {
	s.Fill(background)
	r := math.Max(w, h) * config.GlowRadiusFraction
	for i, g := range config.Glows {
		drawGlow(s, w*g.X, h*g.Y, r, glowColors[i])
	}
}

// drawGlow approximates a radial gradient fading from GlowAlpha at the center
// to transparent at r by stacking shrinking translucent discs.
func drawGlow(s Surface, cx, cy, r float64, c color.NRGBA) {
	step := config.GlowAlpha / config.GlowRings
	for k := 0; k < config.GlowRings; k++ {
		rr := r * (1 - float64(k)/config.GlowRings)
		s.FillCircle(cx, cy, rr, WithAlpha(c, step))
	}
}
