// Command starfield-snapshot renders the portfolio background without a
// window and writes the final frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/effect"
	"github.com/iburimskiy/portfolio/internal/raster"
	"github.com/iburimskiy/portfolio/internal/starfield"
)

type options struct {
	Width   int
	Height  int
	Frames  int
	Seed    int64
	Effect  string
	Palette string
	Out     string
}

func main() {
	var opts options
	flag.IntVar(&opts.Width, "w", config.WindowWidth, "image width in pixels")
	flag.IntVar(&opts.Height, "h", config.WindowHeight, "image height in pixels")
	flag.IntVar(&opts.Frames, "frames", 120, "number of animation frames to run before capturing")
	flag.Int64Var(&opts.Seed, "seed", 1, "random seed for the particle field")
	flag.StringVar(&opts.Effect, "effect", "particles", "background effect: particles or mesh")
	flag.StringVar(&opts.Palette, "palette", "", "comma-separated particle colors (#rrggbb or #rrggbbaa); empty uses the site palette")
	flag.StringVar(&opts.Out, "out", "starfield.png", "output PNG path")
	flag.Parse()

	log.SetPrefix("starfield-snapshot: ")
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d, %d frames, %s)", opts.Out, opts.Width, opts.Height, opts.Frames, opts.Effect)
}

func run(opts options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("-w and -h must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 1 {
		return fmt.Errorf("-frames must be >= 1, got %d", opts.Frames)
	}
	bg, err := effect.New(opts.Effect)
	if err != nil {
		return err
	}
	palette, err := parsePalette(opts.Palette)
	if err != nil {
		return err
	}

	surface := raster.New(opts.Width, opts.Height)
	if err := render(bg, surface, opts, palette); err != nil {
		return err
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := surface.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// render drives the effect for opts.Frames frames and stops it.
func render(bg effect.BackgroundEffect, surface *raster.Surface, opts options, palette []color.NRGBA) error {
	frames := effect.NewFrameQueue()
	window := effect.NewWindow(opts.Width, opts.Height)

	h := bg.Start(surface, frames, window, effect.Config{Seed: opts.Seed, Palette: palette})
	defer h.Stop()
	if !h.Running() {
		return fmt.Errorf("%s effect did not start", opts.Effect)
	}
	for range opts.Frames {
		frames.Dispatch()
	}
	return nil
}

// parsePalette reads a comma-separated color list. An empty list means the
// default palette.
func parsePalette(list string) ([]color.NRGBA, error) {
	var out []color.NRGBA
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := starfield.ParseHex(part)
		if err != nil {
			return nil, fmt.Errorf("-palette: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}
