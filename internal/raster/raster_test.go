package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/iburimskiy/portfolio/internal/starfield"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestFillCircle(t *testing.T) {
	s := New(40, 40)
	s.Fill(red)
	s.FillCircle(20, 20, 8, white)

	if got := s.Image().RGBAAt(20, 20); got != white {
		t.Fatalf("center pixel %v, want white", got)
	}
	if got := s.Image().RGBAAt(1, 1); got != red {
		t.Fatalf("corner pixel %v, want red", got)
	}
	if got := s.Image().RGBAAt(20, 35); got != red {
		t.Fatalf("pixel outside radius %v, want red", got)
	}
}

func TestTranslucentCircleBlends(t *testing.T) {
	s := New(20, 20)
	s.Fill(color.Black)
	s.FillCircle(10, 10, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	got := s.Image().RGBAAt(10, 10)
	if got.R < 120 || got.R > 136 || got.A != 255 {
		t.Fatalf("expected roughly half-bright opaque pixel, got %v", got)
	}
}

func TestStrokeLine(t *testing.T) {
	s := New(30, 30)
	s.Fill(color.Black)
	s.StrokeLine(2, 15, 28, 15, 2, white)

	if got := s.Image().RGBAAt(15, 15); got.R == 0 {
		t.Fatalf("expected line pixel lit, got %v", got)
	}
	if got := s.Image().RGBAAt(15, 5); got.R != 0 {
		t.Fatalf("expected pixel away from line dark, got %v", got)
	}

	// Degenerate lines draw nothing.
	s.Fill(color.Black)
	s.StrokeLine(5, 5, 5, 5, 2, white)
	if got := s.Image().RGBAAt(5, 5); got.R != 0 {
		t.Fatalf("expected zero-length line to be skipped, got %v", got)
	}
}

func TestResize(t *testing.T) {
	s := New(10, 10)
	s.Resize(64, 32)
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Fatalf("size %dx%d, want 64x32", w, h)
	}
	s.FillCircle(60, 30, 3, white)
}

func TestReady(t *testing.T) {
	var missing *Surface
	if missing.Ready() {
		t.Fatal("nil surface reported ready")
	}
	if !New(4, 4).Ready() {
		t.Fatal("new surface not ready")
	}
}

func TestRenderStarfieldAndEncode(t *testing.T) {
	s := New(160, 120)
	st := starfield.NewState(160, 120, 60, 1, nil)
	st.Step()
	starfield.Render(s, st)

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("write png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 120 {
		t.Fatalf("decoded bounds %v", img.Bounds())
	}

	bg := starfield.MustHex("#0f1419")
	lit := 0
	for _, p := range st.Particles {
		c := s.Image().RGBAAt(int(p.X), int(p.Y))
		if c.R > bg.R+10 || c.G > bg.G+10 || c.B > bg.B+10 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected particles to brighten the frame")
	}
}
