// Package viewport maps between screen pixels and data coordinates of a plot area.
package viewport

import (
	"image"
	"math"
)

// Viewport places the data window [XMin, XMax]×[YMin, YMax] on the pixel
// rectangle Rect. Screen y grows downwards, data y upwards.
type Viewport struct {
	Rect       image.Rectangle
	XMin, XMax float64
	YMin, YMax float64
}

// ToData converts a pixel position to data coordinates. inside reports
// whether the pixel lies in Rect.
func (v Viewport) ToData(px, py float64) (x, y float64, inside bool) {
	r := v.Rect
	x = v.XMin + (px-float64(r.Min.X))/float64(r.Dx())*(v.XMax-v.XMin)
	y = v.YMax - (py-float64(r.Min.Y))/float64(r.Dy())*(v.YMax-v.YMin)
	inside = px >= float64(r.Min.X) && px <= float64(r.Max.X) &&
		py >= float64(r.Min.Y) && py <= float64(r.Max.Y)
	return x, y, inside
}

// ToScreen converts data coordinates to a pixel position.
func (v Viewport) ToScreen(x, y float64) (px, py float64) {
	r := v.Rect
	px = float64(r.Min.X) + (x-v.XMin)/(v.XMax-v.XMin)*float64(r.Dx())
	py = float64(r.Min.Y) + (v.YMax-y)/(v.YMax-v.YMin)*float64(r.Dy())
	return px, py
}

// PixelsPerUnit returns the horizontal and vertical scale.
func (v Viewport) PixelsPerUnit() (sx, sy float64) {
	return float64(v.Rect.Dx()) / (v.XMax - v.XMin), float64(v.Rect.Dy()) / (v.YMax - v.YMin)
}

// Ticks returns round values in [lo, hi] spaced 1, 2 or 5 times a power of
// ten, aiming for about n of them.
func Ticks(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) {
		return nil
	}
	raw := (hi - lo) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range [...]float64{2, 5, 10} {
		if raw/mag <= m/1.5 {
			break
		}
		step = m * mag
	}

	var out []float64
	for t := math.Ceil(lo/step) * step; t <= hi+step*1e-9; t += step {
		// Snap away accumulated error so labels print cleanly.
		out = append(out, math.Round(t/step)*step)
	}
	return out
}
