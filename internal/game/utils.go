package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/parabola-drag/internal/fit"
)

var (
	backgroundColor = color.RGBA{R: 235, G: 238, B: 244, A: 255}
	plotColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gridColor       = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	axisColor       = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	textColor       = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	curveColor      = color.RGBA{R: 128, G: 0, B: 128, A: 204}
	outlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	movableColor    = color.RGBA{R: 30, G: 60, B: 220, A: 230}
	wheat           = color.RGBA{R: 245, G: 222, B: 179, A: 230}
	lightCyan       = color.RGBA{R: 224, G: 255, B: 255, A: 242}
	navy            = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	recordColor     = color.RGBA{R: 200, G: 20, B: 20, A: 255}
	errorColor      = color.RGBA{R: 170, G: 0, B: 0, A: 255}
)

// qualityColor is the R² badge background, green through yellow.
func qualityColor(q fit.Quality) color.RGBA {
	switch q {
	case fit.Good:
		return color.RGBA{R: 144, G: 238, B: 144, A: 230}
	case fit.Fair:
		return color.RGBA{R: 173, G: 216, B: 230, A: 230}
	default:
		return color.RGBA{R: 255, G: 255, B: 224, A: 230}
	}
}

// pointColor colours fixed points. In small sets the last one is green.
func pointColor(i, n, movable int) color.RGBA {
	switch {
	case i == movable:
		return movableColor
	case i == n-1 && n <= 5:
		return color.RGBA{R: 30, G: 160, B: 60, A: 230}
	default:
		return color.RGBA{R: 220, G: 30, B: 30, A: 230}
	}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
