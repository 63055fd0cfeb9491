package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/parabola-drag/internal/dataset"
	"github.com/iburimskiy/parabola-drag/internal/session"
)

func (g *Game) openDatasetDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Point Set"),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv", "*.txt"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	pts, err := dataset.Load(filename)
	if err != nil {
		return err
	}
	if err := g.load(g.demo.WithPoints(pts)); err != nil {
		return err
	}
	session.Logger().Info("point set loaded", "file", filename, "points", len(pts))
	g.status = fmt.Sprintf("Loaded %d points from %s", len(pts), filename)
	g.lastErr = nil
	return nil
}

func (g *Game) saveSnapshotDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("parabola.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := g.chart.WritePNG(f, g.frame); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	g.status = "Snapshot saved as " + filename
	return nil
}
