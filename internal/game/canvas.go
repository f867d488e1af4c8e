package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the offscreen image the background effect paints on.
type canvas struct {
	img *ebiten.Image
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

func (c *canvas) Ready() bool { return c != nil && c.img != nil }

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Resize(w, h int) {
	if cw, ch := c.Size(); cw == w && ch == h {
		return
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (c *canvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *canvas) release() {
	c.img.Deallocate()
}
