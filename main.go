package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/game"
)

func main() {
	logger := log.New(os.Stderr, "portfolio: ", log.LstdFlags)

	settings, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	g, err := game.New(settings, content.Default, logger)
	if err != nil {
		logger.Fatalf("init: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(content.Default.Name + " - 1-4/Tab: Sections, Ctrl+S: Save Resume, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Printf("starting with %s background", settings.Effect)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		g.Close()
		logger.Fatalf("run: %v", err)
	}
}
