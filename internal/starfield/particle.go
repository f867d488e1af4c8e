package starfield

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/portfolio/internal/config"
)

// Particle is a single twinkling star. Everything except the position and
// the opacity is fixed for the particle's lifetime.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   color.NRGBA
	Opacity float64
}

// HasHalo reports whether the particle is large enough to get a halo.
func (p *Particle) HasHalo() bool {
	return p.Radius > config.HaloThreshold
}

func newParticle(rng *rand.Rand, w, h float64, palette []color.NRGBA) Particle {
	return Particle{
		X:      rng.Float64() * w,
		Y:      rng.Float64() * h,
		VX:     (rng.Float64() - 0.5) * config.MaxSpeed,
		VY:     (rng.Float64() - 0.5) * config.MaxSpeed,
		Radius: config.MinRadius + rng.Float64()*config.RadiusSpread,
		Color:  palette[rng.Intn(len(palette))],
	}
}

// wrap folds v into [0, size).
func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size can round up to size itself.
	if v >= size {
		v = 0
	}
	return v
}

// Opacity is the twinkle curve: a sine of the time accumulator phase-shifted
// by the particle index, mapped onto [MinOpacity, 1].
func Opacity(t float64, index int) float64 {
	s := 0.5 + 0.5*math.Sin(t*config.TwinkleRate+float64(index))
	return config.MinOpacity + (1-config.MinOpacity)*s
}
