// Package effect binds background animations to a host's drawing surface,
// frame scheduler and resize notifications.
package effect

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/iburimskiy/portfolio/internal/starfield"
)

// FrameID identifies a pending frame request.
type FrameID uint64

// Scheduler is the host's display-refresh scheduler. A requested callback
// runs once, on the next refresh, unless cancelled first.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Viewport reports the current size and notifies on changes. The returned
// function removes the subscription.
type Viewport interface {
	Size() (w, h int)
	OnResize(fn func(w, h int)) (unsubscribe func())
}

// Config tunes an effect at start time.
type Config struct {
	Count       int
	Seed        int64
	MaxDistance float64
	Palette     []color.NRGBA
}

// BackgroundEffect animates a surface until the returned handle is stopped.
// Start returns an inert handle when there is nothing to paint on: a nil
// surface, scheduler or viewport, or a surface whose Ready reports false.
type BackgroundEffect interface {
	Start(s starfield.Surface, sched Scheduler, vp Viewport, cfg Config) *Handle
}

// New returns the effect registered under name.
func New(name string) (BackgroundEffect, error) {
	switch name {
	case "particles":
		return Particles{}, nil
	case "mesh":
		return Mesh{}, nil
	}
	return nil, fmt.Errorf("unknown effect %q", name)
}

// readier is implemented by surfaces that can exist before they are attached
// to any pixels, including as typed nil pointers.
type readier interface {
	Ready() bool
}

func attached(s starfield.Surface) bool {
	if s == nil {
		return false
	}
	if r, ok := s.(readier); ok {
		return r.Ready()
	}
	return true
}

// animation is the per-effect part of a running loop.
type animation interface {
	step()
	render(s starfield.Surface)
	resize(w, h int)
}

// Handle owns a running animation loop.
type Handle struct {
	surface starfield.Surface
	sched   Scheduler
	anim    animation

	alive       bool
	pending     FrameID
	unsubscribe func()
	stopOnce    sync.Once
}

// Running reports whether the loop is live.
func (h *Handle) Running() bool {
	return h != nil && h.alive
}

func start(s starfield.Surface, sched Scheduler, vp Viewport, build func(w, h int) animation) *Handle {
	h := &Handle{}
	if !attached(s) || sched == nil || vp == nil {
		// Nothing to paint on yet; stay inert until the next mount.
		return h
	}
	w, ht := vp.Size()
	s.Resize(w, ht)

	h.surface = s
	h.sched = sched
	h.anim = build(w, ht)
	h.alive = true
	h.unsubscribe = vp.OnResize(h.onResize)
	h.pending = sched.RequestFrame(h.tick)
	return h
}

func (h *Handle) tick() {
	if !h.alive {
		return
	}
	h.anim.step()
	h.anim.render(h.surface)
	h.pending = h.sched.RequestFrame(h.tick)
}

func (h *Handle) onResize(w, ht int) {
	if !h.alive {
		return
	}
	h.surface.Resize(w, ht)
	h.anim.resize(w, ht)
}

// Stop ends the loop. It is safe to call more than once; only the first call
// has any effect. A frame the host already dispatched draws nothing.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() {
		if !h.alive {
			return
		}
		h.alive = false
		h.sched.CancelFrame(h.pending)
		if h.unsubscribe != nil {
			h.unsubscribe()
		}
		h.surface = nil
		h.anim = nil
		h.unsubscribe = nil
	})
}
