package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/parabola-drag/internal/fit"
	"github.com/iburimskiy/parabola-drag/internal/session"
)

type keepLast struct{ f session.Frame }

func (k *keepLast) Render(f session.Frame) { k.f = f }

func testFrame(t *testing.T) session.Frame {
	t.Helper()
	k := &keepLast{}
	s, err := session.New([]fit.Point{fit.Pt(5.4, 3.2), fit.Pt(9.5, 0.7), fit.Pt(12.3, -3.6)}, 1, k,
		session.WithCurveRange(0, 15))
	require.NoError(t, err)
	s.Refresh()
	return k.f
}

func testRasterizer() *Rasterizer {
	return &Rasterizer{
		Width:  320,
		Height: 240,
		XMin:   0,
		XMax:   15,
		YMin:   -8,
		YMax:   8,
		Title:  "Least squares parabola",
	}
}

func TestRasterize(t *testing.T) {
	img, err := testRasterizer().Rasterize(testFrame(t))
	require.NoError(t, err)
	require.Equal(t, 320, img.Bounds().Dx())
	require.Equal(t, 240, img.Bounds().Dy())
}

func TestRasterizeInvalidSize(t *testing.T) {
	r := testRasterizer()
	r.Width = 0
	_, err := r.Rasterize(testFrame(t))
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRasterizer().WritePNG(&buf, testFrame(t)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 320, img.Bounds().Dx())
}
