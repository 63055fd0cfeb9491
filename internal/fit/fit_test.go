package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func requireResult(t *testing.T, want, got Result, delta float64) {
	t.Helper()
	require.InDelta(t, want.A, got.A, delta, "a")
	require.InDelta(t, want.B, got.B, delta, "b")
	require.InDelta(t, want.C, got.C, delta, "c")
}

func TestFitThreePointsInterpolates(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 4)}

	for name, solve := range map[string]Solver{"normal": Fit, "qr": FitQR} {
		t.Run(name, func(t *testing.T) {
			r := solve(pts)
			require.False(t, r.Degenerate)
			requireResult(t, Result{A: 1}, r, tol)
			require.InDelta(t, 1.0, RSquared(pts, r), tol)
		})
	}
}

func TestFitInterpolatesArbitraryTriple(t *testing.T) {
	pts := []Point{Pt(5.4, 3.2), Pt(9.5, 0.7), Pt(12.3, -3.6)}
	r := Fit(pts)

	require.False(t, r.Degenerate)
	for _, p := range pts {
		require.InDelta(t, p.Y, r.Eval(p.X), 1e-8)
	}
	require.InDelta(t, -0.134196838862848, r.A, 1e-9)
	require.InDelta(t, 1.389776801495351, r.B, 1e-8)
	require.InDelta(t, -0.391614906832740, r.C, 1e-8)
	require.InDelta(t, 1.0, RSquared(pts, r), 1e-9)
}

func TestFitAwayFromOrigin(t *testing.T) {
	pts := []Point{Pt(100, 1), Pt(101, 2), Pt(102, 5)}

	for name, solve := range map[string]Solver{"normal": Fit, "qr": FitQR} {
		t.Run(name, func(t *testing.T) {
			r := solve(pts)
			require.False(t, r.Degenerate)
			requireResult(t, Result{A: 1, B: -200, C: 10001}, r, 1e-6)
			require.InDelta(t, 1.0, RSquared(pts, r), 1e-9)
		})
	}
}

func TestFitTranslatedAndScaledTriples(t *testing.T) {
	tests := []struct {
		name   string
		x0     float64
		step   float64
		maxErr float64
	}{
		{name: "origin", x0: 0, step: 1, maxErr: 1e-9},
		{name: "x from 30", x0: 30, step: 1, maxErr: 1e-9},
		{name: "x from 1000", x0: 1000, step: 1, maxErr: 1e-7},
		{name: "years", x0: 2024, step: 1, maxErr: 1e-6},
		{name: "far negative", x0: -5000, step: 2.5, maxErr: 1e-6},
		{name: "narrow", x0: 0.5, step: 0.001, maxErr: 1e-7},
		{name: "wide", x0: 0, step: 1000, maxErr: 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := []Point{
				Pt(tt.x0, 1),
				Pt(tt.x0+tt.step, 2),
				Pt(tt.x0+2*tt.step, 5),
			}
			normal, qr := Fit(pts), FitQR(pts)

			for _, r := range []Result{normal, qr} {
				require.False(t, r.Degenerate)
				for _, p := range pts {
					require.InDelta(t, p.Y, r.Eval(p.X), tt.maxErr)
				}
				require.InDelta(t, 1.0, RSquared(pts, r), 1e-9)
			}
			require.InEpsilon(t, normal.A, qr.A, 1e-6)
		})
	}
}

func TestFitRecoversQuadratic(t *testing.T) {
	q := Result{A: -0.75, B: 2.5, C: 4}
	var pts []Point
	for x := -3.0; x <= 6; x += 0.5 {
		pts = append(pts, Pt(x, q.Eval(x)))
	}

	for name, solve := range map[string]Solver{"normal": Fit, "qr": FitQR} {
		t.Run(name, func(t *testing.T) {
			r := solve(pts)
			requireResult(t, q, r, 1e-8)
			require.InDelta(t, 1.0, RSquared(pts, r), 1e-12)
		})
	}
}

func TestFitOverdeterminedDoesNotInterpolate(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 9)}
	r := Fit(pts)

	requireResult(t, Result{A: 2.25, B: -4.05, C: 0.45}, r, 1e-9)

	var maxResidual float64
	for _, p := range pts {
		maxResidual = math.Max(maxResidual, math.Abs(p.Y-r.Eval(p.X)))
	}
	require.Greater(t, maxResidual, 1e-3)

	r2 := RSquared(pts, r)
	require.Greater(t, r2, 0.0)
	require.Less(t, r2, 1.0)
	require.InDelta(t, 14.0/15.0, r2, 1e-9)
}

func TestFitDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want float64
	}{
		{name: "all x equal", pts: []Point{Pt(2, 1), Pt(2, 5), Pt(2, 6)}, want: 4},
		{name: "all x equal non-dyadic", pts: []Point{Pt(1.7, 1), Pt(1.7, 2), Pt(1.7, 3), Pt(1.7, 6)}, want: 3},
		{name: "two distinct x", pts: []Point{Pt(0, 1), Pt(1, 2), Pt(0, 3), Pt(1, 4)}, want: 2.5},
		{name: "two points", pts: []Point{Pt(0, 1), Pt(1, 3)}, want: 2},
		{name: "empty", pts: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, solve := range []Solver{Fit, FitQR} {
				r := solve(tt.pts)
				require.True(t, r.Degenerate)
				require.Equal(t, Result{C: tt.want, Degenerate: true}, r)
			}
		})
	}
}

func TestFitCoincidentPointsAbsorbed(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(2, 4), Pt(2, 4)}
	r := Fit(pts)

	require.False(t, r.Degenerate)
	requireResult(t, Result{A: 1}, r, tol)
}

func TestFitPermutationInvariant(t *testing.T) {
	p1, p2, p3 := Pt(5.4, 3.2), Pt(9.5, 0.7), Pt(12.3, -3.6)
	p2 = Pt(8.1, 2.25)

	a := Fit([]Point{p1, p2, p3})
	b := Fit([]Point{p2, p3, p1})
	requireResult(t, a, b, 1e-9)
}

func TestFitMatchesFitQR(t *testing.T) {
	xs := []float64{
		0.0003, 0.0822, 0.2770, 0.4212, 0.4403, 0.5588, 0.5943, 0.6134, 0.9070,
		1.0367, 1.1903, 1.2511, 1.2519, 1.2576, 1.6165, 1.6761, 2.0114, 2.0557,
		2.1610, 2.6344,
	}
	ys := []float64{
		1.1017, 1.5021, 0.3844, 1.3251, 1.7206, 1.9453, 0.3894, 0.3328, 1.2887,
		3.1239, 2.1778, 3.1078, 4.1856, 3.3640, 6.0330, 5.8088, 10.5890, 11.5865,
		11.8221, 26.5077,
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Pt(xs[i], ys[i])
	}

	normal, qr := Fit(pts), FitQR(pts)
	requireResult(t, normal, qr, 1e-7)

	r2 := RSquared(pts, qr)
	require.Greater(t, r2, 0.0)
	require.Less(t, r2, 1.0)
}

func TestRSquared(t *testing.T) {
	t.Run("constant y is a perfect fit", func(t *testing.T) {
		pts := []Point{Pt(0, 3), Pt(1, 3), Pt(2, 3), Pt(3, 3)}
		require.Equal(t, 1.0, RSquared(pts, Result{A: 5, B: -2, C: 100}))
	})

	t.Run("worse than the mean is negative", func(t *testing.T) {
		pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
		r2 := RSquared(pts, Result{C: 50})
		require.Less(t, r2, 0.0)
	})
}

func TestSample(t *testing.T) {
	r := Result{A: 1}
	pts := Sample(r, 0, 15, 300)

	require.Len(t, pts, 300)
	require.Equal(t, Pt(0, 0), pts[0])
	require.Equal(t, Pt(15, 225), pts[299])
	for i := 1; i < len(pts); i++ {
		require.Greater(t, pts[i].X, pts[i-1].X)
	}

	require.Nil(t, Sample(r, 0, 1, 0))
	require.Equal(t, []Point{Pt(2, 4)}, Sample(r, 2, 3, 1))
}

func TestFormatting(t *testing.T) {
	r := Result{A: 1, B: -0.5, C: 0.12346}
	require.Equal(t, "y = 1.0000x² + -0.5000x + 0.1235", r.Equation())
	require.Equal(t, r.Equation(), r.String())
	require.Equal(t, "R² = 0.933333", FormatRSquared(14.0/15.0))
}

func TestExtentAndMean(t *testing.T) {
	pts := []Point{Pt(3, 1), Pt(-2, 2), Pt(7, 6)}
	lo, hi := Extent(pts)
	require.Equal(t, -2.0, lo)
	require.Equal(t, 7.0, hi)
	require.Equal(t, 3.0, MeanY(pts))

	lo, hi = Extent(nil)
	require.Zero(t, lo)
	require.Zero(t, hi)
}

func TestGrade(t *testing.T) {
	tests := []struct {
		r2   float64
		want Quality
	}{
		{1, Good},
		{0.96, Good},
		{0.95, Fair},
		{0.81, Fair},
		{0.8, Poor},
		{-3, Poor},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Grade(tt.r2), "r2=%v", tt.r2)
	}
	require.Equal(t, "Good", Good.String())
	require.Equal(t, "Quality(9)", Quality(9).String())
}

func TestPointDistance(t *testing.T) {
	require.Equal(t, 5.0, Pt(-11, 1).Distance(Pt(-7, -2)))
	require.Equal(t, "(1.5, -2)", Pt(1.5, -2).String())
}
