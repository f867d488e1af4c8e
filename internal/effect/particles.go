package effect

import (
	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/starfield"
)

// Particles is the twinkling starfield.
type Particles struct{}

func (Particles) Start(s starfield.Surface, sched Scheduler, vp Viewport, cfg Config) *Handle {
	n := cfg.Count
	if n <= 0 {
		n = config.ParticleCount
	}
	return start(s, sched, vp, func(w, h int) animation {
		return &particleAnimation{state: starfield.NewState(w, h, n, cfg.Seed, cfg.Palette)}
	})
}

type particleAnimation struct {
	state *starfield.State
}

func (a *particleAnimation) step()                      { a.state.Step() }
func (a *particleAnimation) render(s starfield.Surface) { starfield.Render(s, a.state) }
func (a *particleAnimation) resize(w, h int)            { a.state.Resize(w, h) }
