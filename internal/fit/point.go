package fit

import (
	"fmt"
	"math"
)

// Point is a sample in data coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the Euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Extent returns the smallest and largest x coordinate in pts.
// It returns (0, 0) for an empty slice.
func Extent(pts []Point) (lo, hi float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	lo, hi = pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	return lo, hi
}

// MeanY returns the arithmetic mean of the y coordinates, or 0 for no points.
func MeanY(pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pts {
		sum += p.Y
	}
	return sum / float64(len(pts))
}

// distinctX counts different x coordinates, stopping once it reaches limit.
func distinctX(pts []Point, limit int) int {
	seen := make([]float64, 0, limit)
outer:
	for _, p := range pts {
		for _, x := range seen {
			if x == p.X {
				continue outer
			}
		}
		seen = append(seen, p.X)
		if len(seen) == limit {
			break
		}
	}
	return len(seen)
}
