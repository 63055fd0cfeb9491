package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/parabola-drag/internal/config"
	"github.com/iburimskiy/parabola-drag/internal/game"
	"github.com/iburimskiy/parabola-drag/internal/session"
	"github.com/iburimskiy/parabola-drag/internal/sound"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	session.SetLogger(logger)

	demo := chooseDemo(logger)

	player, err := sound.NewPlayer()
	if err != nil {
		logger.Warn("audio cues disabled", "err", err)
	}

	g, err := game.New(demo, player)
	if err != nil {
		logger.Error("start failed", "err", err)
		os.Exit(1)
	}

	printBanner(demo)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(demo.Title + " - R: reset, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

// chooseDemo asks which preset to run. Cancelling picks the first one.
func chooseDemo(logger *slog.Logger) config.Demo {
	name, err := zenity.List(
		"Choose a demo:",
		config.Names(),
		zenity.Title("Parabola Drag"),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			logger.Warn("demo picker failed", "err", err)
		}
		return config.Demos[0]
	}
	d, ok := config.Lookup(name)
	if !ok {
		return config.Demos[0]
	}
	return d
}

func printBanner(d config.Demo) {
	fmt.Println("=== INTERACTIVE PARABOLA FIT ===")
	fmt.Println("Method: least squares")
	fmt.Printf("Demo: %s (%d points)\n", d.Name, len(d.Points))
	if len(d.Points) <= 5 {
		for i, p := range d.Points {
			role := "fixed"
			if i == d.Movable {
				role = "MOVABLE"
			}
			fmt.Printf("  P%d (%s): %v\n", i+1, role, p)
		}
	} else {
		fmt.Printf("  movable point: %v\n", d.Points[d.Movable])
	}
	if d.RecordAnimation {
		fmt.Printf("\nThe animation is saved to %s when the mouse is released\n", config.GIFPath)
	}
}
