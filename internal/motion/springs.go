// Package motion eases per-element UI values with damped springs.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settle is how close a spring must be to rest before it snaps to its target.
const settle = 1e-3

// Springs holds a position and velocity per key, all driven by one spring.
type Springs struct {
	spring harmonica.Spring
	pos    map[string]float64
	vel    map[string]float64
}

func NewSprings(fps int, frequency, damping float64) *Springs {
	return &Springs{
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping),
		pos:    map[string]float64{},
		vel:    map[string]float64{},
	}
}

// Step advances key one frame toward target and returns its new position.
// A key at rest on zero is forgotten.
func (s *Springs) Step(key string, target float64) float64 {
	p, v := s.spring.Update(s.pos[key], s.vel[key], target)
	if math.Abs(p-target) < settle && math.Abs(v) < settle {
		p, v = target, 0
	}
	if p == 0 && v == 0 {
		delete(s.pos, key)
		delete(s.vel, key)
		return 0
	}
	s.pos[key], s.vel[key] = p, v
	return p
}

// Focus pulls active toward 1 and every other key back toward 0. An empty
// active key releases everything.
func (s *Springs) Focus(active string) {
	for key := range s.pos {
		if key != active {
			s.Step(key, 0)
		}
	}
	if active != "" {
		s.Step(active, 1)
	}
}

// Value is the current position of key, zero if it is not moving.
func (s *Springs) Value(key string) float64 {
	return s.pos[key]
}

// Len is the number of keys away from rest at zero.
func (s *Springs) Len() int {
	return len(s.pos)
}
