package starfield

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/portfolio/internal/config"
)

// State is everything the animator carries between ticks. It is owned by a
// single effect instance and only touched from the frame callback.
type State struct {
	Width, Height float64
	Time          float64
	Particles     []Particle

	rng *rand.Rand
}

// DefaultPalette is config.Palette parsed once.
var DefaultPalette = parsePalette(config.Palette)

func parsePalette(hexes []string) []color.NRGBA {
	out := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		out[i] = MustHex(h)
	}
	return out
}

// NewState allocates n particles scattered over a w x h viewport.
// A nil or empty palette falls back to DefaultPalette.
func NewState(w, h, n int, seed int64, palette []color.NRGBA) *State {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if n < 0 {
		n = 0
	}
	st := &State{
		Width:     float64(max(w, 1)),
		Height:    float64(max(h, 1)),
		Particles: make([]Particle, n),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for i := range st.Particles {
		st.Particles[i] = newParticle(st.rng, st.Width, st.Height, palette)
		st.Particles[i].Opacity = Opacity(0, i)
	}
	return st
}

// Step advances the time accumulator and moves every particle one tick,
// wrapping at the viewport edges.
func (st *State) Step() {
	st.Time += config.TimeStep
	for i := range st.Particles {
		p := &st.Particles[i]
		p.X = wrap(p.X+p.VX, st.Width)
		p.Y = wrap(p.Y+p.VY, st.Height)
		p.Opacity = Opacity(st.Time, i)
	}
}

// Resize records the new viewport. Particles left outside it are scattered
// to a fresh random position; nothing else about them changes.
func (st *State) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	st.Width, st.Height = float64(w), float64(h)
	for i := range st.Particles {
		p := &st.Particles[i]
		if p.X < st.Width && p.Y < st.Height {
			continue
		}
		p.X = st.rng.Float64() * st.Width
		p.Y = st.rng.Float64() * st.Height
	}
}

// InBounds reports whether every particle lies inside the viewport.
func (st *State) InBounds() bool {
	for _, p := range st.Particles {
		if p.X < 0 || p.X >= st.Width || p.Y < 0 || p.Y >= st.Height {
			return false
		}
	}
	return true
}
