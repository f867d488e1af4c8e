// Package raster is an in-memory drawing surface for rendering the
// background without a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Surface paints onto an RGBA image.
type Surface struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func New(w, h int) *Surface {
	w, h = max(w, 1), max(h, 1)
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
}

func (s *Surface) Image() *image.RGBA { return s.img }

// Ready reports whether s has pixels to paint on. It is safe on a nil
// receiver.
func (s *Surface) Ready() bool { return s != nil && s.img != nil }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image. Like a canvas, the old content is
// dropped.
func (s *Surface) Resize(w, h int) {
	if cw, ch := s.Size(); cw == w && ch == h {
		return
	}
	*s = *New(w, h)
}

func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.begin()
	cx, cy, rr, k := float32(x), float32(y), float32(r), float32(r*kappa)
	s.ras.MoveTo(cx+rr, cy)
	s.ras.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	s.ras.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	s.ras.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	s.ras.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	s.ras.ClosePath()
	s.paint(c)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	// Offset both ends by half the width along the normal.
	nx, ny := -dy/l*width/2, dx/l*width/2
	s.begin()
	s.ras.MoveTo(float32(x0+nx), float32(y0+ny))
	s.ras.LineTo(float32(x1+nx), float32(y1+ny))
	s.ras.LineTo(float32(x1-nx), float32(y1-ny))
	s.ras.LineTo(float32(x0-nx), float32(y0-ny))
	s.ras.ClosePath()
	s.paint(c)
}

func (s *Surface) begin() {
	w, h := s.Size()
	s.ras.Reset(w, h)
}

func (s *Surface) paint(c color.Color) {
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

// WritePNG encodes the current frame.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
