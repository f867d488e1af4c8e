// Package game hosts the portfolio in an ebiten window: the animated
// background, the navigation bar and the active section.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio/internal/audio"
	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/effect"
	"github.com/iburimskiy/portfolio/internal/motion"
	"github.com/iburimskiy/portfolio/internal/ui"
)

const (
	scrollSpeed = 40

	// Critically damped, so hover never overshoots [0,1].
	hoverFrequency = 14.0
	levelFrequency = 20.0
	damping        = 1.0
)

type Game struct {
	settings config.Settings
	profile  content.Profile
	logger   *log.Logger
	fonts    *fonts
	chime    *audio.Player
	open     func(url string) error
	dialogs  bool

	// background
	frames     *effect.FrameQueue
	window     *effect.Window
	canvas     *canvas
	background effect.BackgroundEffect
	handle     *effect.Handle

	// view
	section ui.Section
	nav     []ui.Element
	page    ui.Page
	dirty   bool
	scroll  float64

	// input
	hover   *motion.Springs
	level   *motion.Springs
	hovered string
	pressed string

	status  string
	lastErr error
}

func New(s config.Settings, p content.Profile, logger *log.Logger) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	bg, err := effect.New(s.Effect)
	if err != nil {
		return nil, err
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Game{
		settings:   s,
		profile:    p,
		logger:     logger,
		fonts:      f,
		chime:      audio.NewPlayer(s.Sound),
		open:       openURL,
		dialogs:    true,
		frames:     effect.NewFrameQueue(),
		window:     effect.NewWindow(s.Width, s.Height),
		background: bg,
		section:    ui.Home,
		dirty:      true,
		hover:      motion.NewSprings(ebiten.TPS(), hoverFrequency, damping),
		level:      motion.NewSprings(ebiten.TPS(), levelFrequency, damping),
	}, nil
}

// mount creates the drawing surface and starts the background effect.
func (g *Game) mount() {
	w, h := g.window.Size()
	g.canvas = newCanvas(w, h)
	seed := g.settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.handle = g.background.Start(g.canvas, g.frames, g.window, effect.Config{Seed: seed})
	g.logger.Printf("background %q started at %dx%d", g.settings.Effect, w, h)
}

// Close stops the background effect and releases the surface. It is safe
// to call more than once.
func (g *Game) Close() {
	if g.handle.Running() {
		g.logger.Printf("background %q stopped", g.settings.Effect)
	}
	g.handle.Stop()
	if g.canvas != nil {
		g.canvas.release()
		g.canvas = nil
	}
}

func (g *Game) Update() error {
	if g.canvas == nil {
		g.mount()
	}
	g.frames.Dispatch()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	g.handleKeys()

	if g.dirty {
		g.relayout()
	}
	g.handleMouse()
	g.animate()
	return nil
}

func (g *Game) handleKeys() {
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(k) {
			g.goTo(ui.Sections[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.goTo(g.section.Next())
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveResume(); err != nil {
			g.fail(err)
		}
	}
}

func (g *Game) handleMouse() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		g.scrollBy(-dy * scrollSpeed)
	}

	mx, my := ebiten.CursorPosition()
	hit, ok := g.hitTest(float64(mx), float64(my))
	g.hovered = ""
	if ok {
		g.hovered = hit.ID
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if ok && g.pressed == hit.ID {
			g.activate(hit.Action)
		}
		g.pressed = ""
	}
}

// hitTest checks the fixed navigation bar first, then the scrolled page.
func (g *Game) hitTest(x, y float64) (ui.Element, bool) {
	if e, ok := ui.HitTest(g.nav, x, y); ok {
		return e, true
	}
	if y < ui.NavHeight(g.fonts) {
		return ui.Element{}, false
	}
	return ui.HitTest(g.page.Elements, x, y+g.scroll)
}

func (g *Game) activate(a ui.Action) {
	switch a.Kind {
	case ui.ActionGoTo:
		g.goTo(a.Section)
	case ui.ActionOpen:
		if err := g.open(a.URL); err != nil {
			g.fail(err)
			return
		}
		g.status = "Opened " + a.URL
	case ui.ActionSaveResume:
		if err := g.saveResume(); err != nil {
			g.fail(err)
		}
	}
}

func (g *Game) goTo(s ui.Section) {
	if s == g.section {
		return
	}
	g.section = s
	g.scroll = 0
	g.dirty = true
	g.lastErr = nil
	g.status = ""
	if err := g.chime.Play(); err != nil {
		g.fail(err)
	}
}

func (g *Game) relayout() {
	w, h := g.window.Size()
	g.nav = ui.NavBar(g.profile, g.section, float64(w), g.fonts)
	g.page = ui.Build(g.profile, g.section, float64(w), float64(h), g.fonts)
	g.scrollBy(0)
	g.dirty = false
}

func (g *Game) scrollBy(d float64) {
	_, h := g.window.Size()
	limit := max(0, g.page.Height-float64(h))
	g.scroll = min(max(g.scroll+d, 0), limit)
}

func (g *Game) animate() {
	g.hover.Focus(g.hovered)
	g.level.Step(chimeKey, g.chime.Level())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.window.Set(outsideWidth, outsideHeight) {
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
