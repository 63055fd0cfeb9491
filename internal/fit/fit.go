// Package fit computes least-squares parabolas y = ax² + bx + c over 2D point sets.
//
// Every function here is pure. Singular inputs (fewer than three distinct x
// coordinates) never produce an error: the result degrades to the horizontal
// line through the mean y so callers can keep drawing.
package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// singularTol is the smallest pivot, relative to the largest entry of the
// normal matrix, that Fit accepts before treating the system as singular.
// The matrix is built from normalized x, so its entries stay near 1.
const singularTol = 1e-12

// Result holds the coefficients of y = ax² + bx + c.
type Result struct {
	A, B, C float64

	// Degenerate is set when the system was singular and the result is the
	// fallback line y = mean(y).
	Degenerate bool
}

// Solver fits a parabola to a point set.
type Solver func(pts []Point) Result

// Eval returns the value of the parabola at x.
func (r Result) Eval(x float64) float64 {
	return (r.A*x+r.B)*x + r.C
}

// Equation formats the parabola as "y = {a}x² + {b}x + {c}" with four decimals.
func (r Result) Equation() string {
	return fmt.Sprintf("y = %.4fx² + %.4fx + %.4f", r.A, r.B, r.C)
}

func (r Result) String() string {
	return r.Equation()
}

func (r Result) finite() bool {
	for _, v := range [...]float64{r.A, r.B, r.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Fallback returns the horizontal line through the mean y of pts.
func Fallback(pts []Point) Result {
	return Result{C: MeanY(pts), Degenerate: true}
}

// Fit solves the 3x3 normal equations
//
//	[Σx⁴ Σx³ Σx²] [a]   [Σx²y]
//	[Σx³ Σx² Σx ] [b] = [Σxy ]
//	[Σx² Σx  n  ] [c]   [Σy  ]
//
// by Gaussian elimination with partial pivoting. The sums are taken over x
// shifted to its mean and scaled into [-1, 1]. With exactly three points of
// distinct x the parabola interpolates them.
func Fit(pts []Point) Result {
	if len(pts) < 3 || distinctX(pts, 3) < 3 {
		return Fallback(pts)
	}

	n := newNorm(pts)
	var sx, sx2, sx3, sx4, sy, sxy, sx2y float64
	for _, p := range pts {
		u := n.apply(p.X)
		u2 := u * u
		sx += u
		sx2 += u2
		sx3 += u2 * u
		sx4 += u2 * u2
		sy += p.Y
		sxy += u * p.Y
		sx2y += u2 * p.Y
	}

	m := [3][4]float64{
		{sx4, sx3, sx2, sx2y},
		{sx3, sx2, sx, sxy},
		{sx2, sx, float64(len(pts)), sy},
	}
	coef, ok := solve3(m)
	if !ok {
		return Fallback(pts)
	}
	r := n.unapply(Result{A: coef[0], B: coef[1], C: coef[2]})
	if !r.finite() {
		return Fallback(pts)
	}
	return r
}

// solve3 reduces the augmented matrix m in place and back-substitutes.
// It reports false when a pivot vanishes.
func solve3(m [3][4]float64) ([3]float64, bool) {
	var scale float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			scale = math.Max(scale, math.Abs(m[i][j]))
		}
	}
	if scale == 0 {
		return [3]float64{}, false
	}

	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) <= singularTol*scale {
			return [3]float64{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < 3; row++ {
			f := m[row][col] / m[col][col]
			m[row][col] = 0
			for k := col + 1; k < 4; k++ {
				m[row][k] -= f * m[col][k]
			}
		}
	}

	var x [3]float64
	for i := 2; i >= 0; i-- {
		s := m[i][3]
		for k := i + 1; k < 3; k++ {
			s -= m[i][k] * x[k]
		}
		x[i] = s / m[i][i]
	}
	return x, true
}

// norm maps x to u = (x - shift) / scale.
type norm struct {
	shift, scale float64
}

// newNorm centers x on its mean and scales the largest deviation to 1.
func newNorm(pts []Point) norm {
	var mean float64
	for _, p := range pts {
		mean += p.X
	}
	mean /= float64(len(pts))

	var dev float64
	for _, p := range pts {
		dev = math.Max(dev, math.Abs(p.X-mean))
	}
	if dev == 0 {
		dev = 1
	}
	return norm{shift: mean, scale: dev}
}

func (n norm) apply(x float64) float64 {
	return (x - n.shift) / n.scale
}

// unapply turns coefficients fitted over u back into coefficients over x.
func (n norm) unapply(r Result) Result {
	a := r.A / (n.scale * n.scale)
	b := r.B / n.scale
	m := n.shift
	return Result{
		A: a,
		B: b - 2*a*m,
		C: r.C - b*m + a*m*m,
	}
}

// FitQR solves the same least-squares problem through a QR factorization of
// the design matrix with columns [u², u, 1], u being x normalized as in Fit.
// It agrees with Fit on well-conditioned input and is the better choice for
// larger data sets, since it never forms the squared-condition normal matrix.
func FitQR(pts []Point) Result {
	n := len(pts)
	if n < 3 || distinctX(pts, 3) < 3 {
		return Fallback(pts)
	}

	nm := newNorm(pts)
	a := mat.NewDense(n, 3, nil)
	y := mat.NewVecDense(n, nil)
	for i, p := range pts {
		u := nm.apply(p.X)
		a.Set(i, 0, u*u)
		a.Set(i, 1, u)
		a.Set(i, 2, 1)
		y.SetVec(i, p.Y)
	}

	var qr mat.QR
	qr.Factorize(a)

	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, y); err != nil {
		return Fallback(pts)
	}
	r := nm.unapply(Result{A: c.AtVec(0), B: c.AtVec(1), C: c.AtVec(2)})
	if !r.finite() {
		return Fallback(pts)
	}
	return r
}

// RSquared returns the coefficient of determination of r over pts.
// When every y is identical it returns exactly 1. The value is negative
// when r predicts worse than the mean and is not clamped.
func RSquared(pts []Point, r Result) float64 {
	mean := MeanY(pts)
	var ssRes, ssTot float64
	for _, p := range pts {
		d := p.Y - r.Eval(p.X)
		ssRes += d * d
		t := p.Y - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// FormatRSquared formats an R² value with six decimals.
func FormatRSquared(v float64) string {
	return fmt.Sprintf("R² = %.6f", v)
}

// Sample evaluates r at n evenly spaced x values covering [lo, hi], both ends included.
func Sample(r Result, lo, hi float64, n int) []Point {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Point{{X: lo, Y: r.Eval(lo)}}
	}
	out := make([]Point, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		out[i] = Point{X: x, Y: r.Eval(x)}
	}
	return out
}
