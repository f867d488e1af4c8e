package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	opts := options{Width: 64, Height: 48, Frames: 3, Seed: 7, Effect: "particles", Out: out}
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("expected 64x48 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRunMeshEffect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mesh.png")
	opts := options{Width: 80, Height: 60, Frames: 2, Seed: 3, Effect: "mesh", Out: out}
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunSinglePalette(t *testing.T) {
	out := filepath.Join(t.TempDir(), "red.png")
	opts := options{Width: 64, Height: 48, Frames: 1, Seed: 5, Effect: "particles", Palette: "#ff0000", Out: out}
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	// Only red stars can push a pixel's red channel above green and blue
	// by this much; the backdrop and glows are blue.
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 > 80 && r > 2*g && r > 2*bl {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("expected red stars in the frame")
	}
}

func TestParsePalette(t *testing.T) {
	got, err := parsePalette(" #ff0000, #00ff0080 ,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0].R != 0xff || got[1].G != 0xff || got[1].A != 0x80 {
		t.Fatalf("unexpected palette %+v", got)
	}
	if got, err := parsePalette(""); err != nil || got != nil {
		t.Fatalf("empty list = %v, %v; want nil, nil", got, err)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never.png")
	tests := []struct {
		name string
		opts options
	}{
		{name: "zero width", opts: options{Width: 0, Height: 10, Frames: 1, Effect: "particles", Out: out}},
		{name: "no frames", opts: options{Width: 10, Height: 10, Frames: 0, Effect: "particles", Out: out}},
		{name: "unknown effect", opts: options{Width: 10, Height: 10, Frames: 1, Effect: "plasma", Out: out}},
		{name: "bad palette", opts: options{Width: 10, Height: 10, Frames: 1, Effect: "particles", Palette: "#ff00", Out: out}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts); err == nil {
				t.Fatal("expected error")
			}
			if _, err := os.Stat(out); err == nil {
				t.Fatal("no output should be written on error")
			}
		})
	}
}
