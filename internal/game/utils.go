package game

import (
	"image/color"

	"github.com/iburimskiy/portfolio/internal/starfield"
)

var (
	colorAccent   = starfield.MustHex("#4a90e2")
	colorMuted    = starfield.MustHex("#8892b0")
	colorText     = starfield.MustHex("#ccd6f6")
	colorHeading  = starfield.MustHex("#667eea")
	colorHeading2 = starfield.MustHex("#764ba2")
	colorPanel    = color.NRGBA{R: 30, G: 30, B: 45, A: 230}
	colorWhite    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// chimeKey tracks the smoothed chime loudness in Game.level.
const chimeKey = "chime"

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = starfield.Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
