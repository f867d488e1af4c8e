package effect

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/starfield"
)

// Mesh is the connected node field: drifting points that bounce off the
// viewport edges, linked whenever two of them come closer than MaxDistance.
type Mesh struct{}

func (Mesh) Start(s starfield.Surface, sched Scheduler, vp Viewport, cfg Config) *Handle {
	n := cfg.Count
	if n <= 0 {
		n = config.MeshNodeCount
	}
	maxDist := cfg.MaxDistance
	if maxDist <= 0 {
		maxDist = config.MeshMaxDistance
	}
	return start(s, sched, vp, func(w, h int) animation {
		return newMeshAnimation(w, h, n, maxDist, cfg.Seed, cfg.Palette)
	})
}

type meshAnimation struct {
	width, height float64
	maxDist       float64
	nodes         []starfield.Particle
	rng           *rand.Rand
}

func newMeshAnimation(w, h, n int, maxDist float64, seed int64, palette []color.NRGBA) *meshAnimation {
	if len(palette) == 0 {
		palette = starfield.DefaultPalette
	}
	a := &meshAnimation{
		width:   float64(max(w, 1)),
		height:  float64(max(h, 1)),
		maxDist: maxDist,
		nodes:   make([]starfield.Particle, n),
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := range a.nodes {
		a.nodes[i] = starfield.Particle{
			X:       a.rng.Float64() * a.width,
			Y:       a.rng.Float64() * a.height,
			VX:      (a.rng.Float64() - 0.5) * config.MaxSpeed * 2,
			VY:      (a.rng.Float64() - 0.5) * config.MaxSpeed * 2,
			Radius:  config.MeshNodeRadius,
			Color:   palette[a.rng.Intn(len(palette))],
			Opacity: 1,
		}
	}
	return a
}

func (a *meshAnimation) step() {
	for i := range a.nodes {
		p := &a.nodes[i]
		p.X, p.VX = bounce(p.X+p.VX, p.VX, a.width)
		p.Y, p.VY = bounce(p.Y+p.VY, p.VY, a.height)
	}
}

// bounce reflects v back into [0, size) and flips the velocity when it hits
// an edge.
func bounce(v, vel, size float64) (float64, float64) {
	switch {
	case v < 0:
		v, vel = -v, -vel
	case v >= size:
		v, vel = 2*size-v, -vel
	}
	// A velocity larger than the viewport can still overshoot.
	if v < 0 || v >= size {
		v = math.Mod(math.Abs(v), size)
	}
	return v, vel
}

func (a *meshAnimation) render(s starfield.Surface) {
	starfield.DrawBackdrop(s, a.width, a.height)
	for i := range a.nodes {
		for j := i + 1; j < len(a.nodes); j++ {
			p, q := &a.nodes[i], &a.nodes[j]
			d := math.Hypot(p.X-q.X, p.Y-q.Y)
			if d >= a.maxDist {
				continue
			}
			alpha := (1 - d/a.maxDist) * 0.5
			s.StrokeLine(p.X, p.Y, q.X, q.Y, config.MeshLineWidth, starfield.WithAlpha(p.Color, alpha))
		}
	}
	for i := range a.nodes {
		p := &a.nodes[i]
		s.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
}

func (a *meshAnimation) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.width, a.height = float64(w), float64(h)
	for i := range a.nodes {
		p := &a.nodes[i]
		if p.X < a.width && p.Y < a.height {
			continue
		}
		p.X = a.rng.Float64() * a.width
		p.Y = a.rng.Float64() * a.height
	}
}
