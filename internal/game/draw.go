package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio/internal/starfield"
	"github.com/iburimskiy/portfolio/internal/ui"
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}

	for _, e := range g.page.Elements {
		e.Rect = e.Rect.Offset(-g.scroll)
		g.drawElement(screen, e)
	}
	for _, e := range g.nav {
		g.drawElement(screen, e)
	}

	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	_, h := g.window.Size()
	status := "1-4/Tab: switch section  Ctrl+S: save resume  Esc/Q: quit"
	if g.status != "" {
		status = g.status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, h-20)

	if g.settings.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  frames pending %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.frames.Pending()), 12, 4)
	}
}

func toneColor(t ui.Tone) color.NRGBA {
	switch t {
	case ui.ToneMuted:
		return colorMuted
	case ui.ToneAccent:
		return colorAccent
	case ui.ToneHeading:
		return colorHeading
	}
	return colorText
}

func (g *Game) drawElement(screen *ebiten.Image, e ui.Element) {
	hover := g.hover.Value(e.ID)
	r := e.Rect
	tone := toneColor(e.Tone)

	switch e.Kind {
	case ui.KindText:
		g.drawLines(screen, e.Lines, e.Style, r.X, r.Y, tone)

	case ui.KindNavItem:
		c := lerpColor(colorMuted, colorAccent, hover)
		if e.Active {
			c = colorAccent
		}
		g.drawLines(screen, e.Lines, e.Style, r.X, r.Y, c)
		if e.Active {
			// The underline swells with the section chime.
			thickness := 1 + 2*g.level.Value(chimeKey)
			fillRect(screen, r.X, r.Y+r.H-2, r.W, thickness, colorAccent)
		}

	case ui.KindLink:
		g.drawLines(screen, e.Lines, e.Style, r.X, r.Y, lerpColor(colorMuted, colorAccent, hover))

	case ui.KindButton:
		g.drawButton(screen, e, hover)

	case ui.KindTag:
		fillRect(screen, r.X, r.Y, r.W, r.H, starfield.WithAlpha(colorAccent, 0.1))
		strokeRect(screen, r.X, r.Y, r.W, r.H, 1, starfield.WithAlpha(colorAccent, 0.3))
		g.drawCentered(screen, e.Lines[0], e.Style, r, colorAccent)

	case ui.KindCard:
		if e.Action.Clickable() {
			r = r.Offset(-4 * hover)
		}
		fillRect(screen, r.X, r.Y, r.W, r.H, colorPanel)
		strokeRect(screen, r.X, r.Y, r.W, r.H, 1, starfield.WithAlpha(tone, 0.6+0.4*hover))
		if len(e.Lines) > 0 {
			g.drawCentered(screen, e.Lines[0], e.Style, r, colorText)
		}

	case ui.KindMonogram:
		fillRect(screen, r.X, r.Y, r.W, r.H, colorPanel)
		strokeRect(screen, r.X, r.Y, r.W, r.H, 2, colorAccent)
		g.drawCentered(screen, e.Lines[0], e.Style, r, lerpColor(colorHeading, colorHeading2, 0.5))

	case ui.KindBars:
		drawPanel(screen, r, e.Variant)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, e ui.Element, hover float64) {
	r := e.Rect
	if !e.Action.Clickable() {
		strokeRect(screen, r.X, r.Y, r.W, r.H, 1, starfield.WithAlpha(colorMuted, 0.5))
		g.drawCentered(screen, e.Lines[0], e.Style, r, colorMuted)
		return
	}
	r = r.Offset(-2 * hover)
	switch e.Tone {
	case ui.ToneHeading:
		// Primary call to action: the name gradient, darkening on hover.
		fillRect(screen, r.X, r.Y, r.W, r.H, lerpColor(colorHeading, colorHeading2, 0.3+0.7*hover))
		g.drawCentered(screen, e.Lines[0], e.Style, r, colorWhite)
	default:
		fillRect(screen, r.X, r.Y, r.W, r.H, starfield.WithAlpha(colorAccent, hover))
		strokeRect(screen, r.X, r.Y, r.W, r.H, 2, colorAccent)
		g.drawCentered(screen, e.Lines[0], e.Style, r, lerpColor(colorAccent, colorWhite, hover))
	}
}

// drawPanel is the decoration next to a project card.
func drawPanel(screen *ebiten.Image, r ui.Rect, variant int) {
	fillRect(screen, r.X, r.Y, r.W, r.H, starfield.WithAlpha(colorAccent, 0.05))
	strokeRect(screen, r.X, r.Y, r.W, r.H, 1, starfield.WithAlpha(colorAccent, 0.2))
	pad := r.W * 0.1
	if variant == 0 {
		for i := 1; i <= 5; i++ {
			w := (r.W - 2*pad) * float64(60+i*20) / 160
			fillRect(screen, r.X+pad, r.Y+pad+float64(i-1)*24, w, 12, starfield.WithAlpha(colorHeading, 0.2+0.1*float64(i)))
		}
		return
	}
	for i := 0; i < 3; i++ {
		y := r.Y + pad + float64(i)*20
		fillRect(screen, r.X+pad, y, r.W-2*pad, 4, starfield.WithAlpha(colorAccent, 0.4))
	}
	half := (r.W - 3*pad) / 2
	fillRect(screen, r.X+pad, r.Y+pad+80, half, 60, starfield.WithAlpha(colorHeading, 0.3))
	fillRect(screen, r.X+2*pad+half, r.Y+pad+80, half, 60, starfield.WithAlpha(colorHeading2, 0.3))
}

func (g *Game) drawLines(screen *ebiten.Image, lines []string, st ui.Style, x, y float64, c color.Color) {
	face := g.fonts.face(st)
	lh := g.fonts.LineHeight(st)
	m := face.Metrics()
	inset := (lh - (m.HAscent + m.HDescent)) / 2
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lh+inset)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, line, face, op)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, st ui.Style, r ui.Rect, c color.Color) {
	w := g.fonts.Advance(s, st)
	lh := g.fonts.LineHeight(st)
	g.drawLines(screen, []string{s}, st, r.X+(r.W-w)/2, r.Y+(r.H-lh)/2, c)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}
