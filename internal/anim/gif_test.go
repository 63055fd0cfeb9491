package anim

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func decode(t *testing.T, path string) *gif.GIF {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	return g
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	e := &GIFExporter{Path: path, Delay: 100 * time.Millisecond}

	frames := []image.Image{
		solid(16, 8, color.White),
		solid(16, 8, color.Black),
		solid(16, 8, color.RGBA{R: 255, A: 255}),
	}
	require.NoError(t, e.Export(frames))

	g := decode(t, path)
	require.Len(t, g.Image, 3)
	require.Equal(t, []int{10, 10, 10}, g.Delay)
	require.Equal(t, 0, g.LoopCount)
	require.Equal(t, 16, g.Image[0].Bounds().Dx())
	require.Equal(t, 8, g.Image[0].Bounds().Dy())
}

func TestExportOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gif")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	e := &GIFExporter{Path: path, Delay: 100 * time.Millisecond}
	require.NoError(t, e.Export([]image.Image{solid(4, 4, color.White), solid(4, 4, color.Black)}))
	require.Len(t, decode(t, path).Image, 2)

	require.NoError(t, e.Export([]image.Image{
		solid(4, 4, color.White), solid(4, 4, color.Black), solid(4, 4, color.White), solid(4, 4, color.Black),
	}))
	require.Len(t, decode(t, path).Image, 4)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestExportScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	e := &GIFExporter{Path: path, Delay: 100 * time.Millisecond, Scale: 0.5}

	require.NoError(t, e.Export([]image.Image{solid(40, 20, color.White), solid(40, 20, color.Black)}))

	g := decode(t, path)
	require.Equal(t, 20, g.Image[1].Bounds().Dx())
	require.Equal(t, 10, g.Image[1].Bounds().Dy())
}

func TestExportTooFewFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	e := &GIFExporter{Path: path, Delay: 100 * time.Millisecond}

	err := e.Export([]image.Image{solid(4, 4, color.White)})
	require.ErrorIs(t, err, ErrTooFewFrames)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestExportMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.gif")
	e := &GIFExporter{Path: path, Delay: 100 * time.Millisecond}

	err := e.Export([]image.Image{solid(4, 4, color.White), solid(4, 4, color.Black)})
	require.Error(t, err)
}
