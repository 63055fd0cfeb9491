package session

import "github.com/iburimskiy/parabola-drag/internal/fit"

const (
	DefaultCaptureRadius = 0.5
	DefaultSamples       = 300
	DefaultCurveMargin   = 1.0
)

type options struct {
	captureRadius float64
	allowXDrag    bool
	rSquared      bool
	solver        fit.Solver
	samples       int
	margin        float64
	fixedRange    bool
	lo, hi        float64
	record        bool
	rasterizer    Rasterizer
	exporter      Exporter
}

func defaultOptions() options {
	return options{
		captureRadius: DefaultCaptureRadius,
		allowXDrag:    true,
		rSquared:      true,
		solver:        fit.Fit,
		samples:       DefaultSamples,
		margin:        DefaultCurveMargin,
	}
}

// Option configures a Session.
type Option func(*options)

// WithCaptureRadius sets how close, in data units, a pointer-down must land
// to the movable point to start a drag.
func WithCaptureRadius(r float64) Option {
	return func(o *options) { o.captureRadius = r }
}

// WithXDrag controls whether dragging moves the x coordinate too. When
// disabled only y follows the pointer.
func WithXDrag(allow bool) Option {
	return func(o *options) { o.allowXDrag = allow }
}

// WithRSquared controls whether frames carry the R² value and text.
func WithRSquared(enabled bool) Option {
	return func(o *options) { o.rSquared = enabled }
}

// WithSolver replaces the fitting routine, fit.Fit by default.
func WithSolver(s fit.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithSamples sets the number of curve samples per frame.
func WithSamples(n int) Option {
	return func(o *options) { o.samples = n }
}

// WithCurveMargin sets how far the sampled curve extends past the points'
// x extent. Ignored when WithCurveRange is used.
func WithCurveMargin(m float64) Option {
	return func(o *options) { o.margin = m }
}

// WithCurveRange samples the curve over a fixed [lo, hi].
func WithCurveRange(lo, hi float64) Option {
	return func(o *options) {
		o.fixedRange = true
		o.lo, o.hi = lo, hi
	}
}

// WithRecording turns on animation capture: every drag update is rasterized
// and the gesture is exported when the pointer is released.
func WithRecording(r Rasterizer, e Exporter) Option {
	return func(o *options) {
		o.record = true
		o.rasterizer = r
		o.exporter = e
	}
}
