package config

import (
	"github.com/iburimskiy/parabola-drag/internal/fit"
	"github.com/iburimskiy/parabola-drag/internal/session"
)

// Demo is one preset of the interactive session.
type Demo struct {
	Name  string
	Title string

	Points  []fit.Point
	Movable int

	AllowXDrag      bool
	RecordAnimation bool
	ShowRSquared    bool
	CaptureRadius   float64
	Solver          fit.Solver

	// Axis bounds of the plot.
	XMin, XMax float64
	YMin, YMax float64

	// When FixedCurve is false the curve spans the points' x extent widened
	// by CurveMargin. Otherwise it spans the x axis.
	FixedCurve  bool
	CurveMargin float64

	Instructions []string
}

var threePoints = []fit.Point{
	fit.Pt(5.4, 3.2),
	fit.Pt(9.5, 0.7),
	fit.Pt(12.3, -3.6),
}

// Samples is the data set of the data-fitting demo.
var Samples = []fit.Point{
	fit.Pt(0.0003, 1.1017), fit.Pt(0.0822, 1.5021), fit.Pt(0.2770, 0.3844), fit.Pt(0.4212, 1.3251),
	fit.Pt(0.4403, 1.7206), fit.Pt(0.5588, 1.9453), fit.Pt(0.5943, 0.3894), fit.Pt(0.6134, 0.3328),
	fit.Pt(0.9070, 1.2887), fit.Pt(1.0367, 3.1239), fit.Pt(1.1903, 2.1778), fit.Pt(1.2511, 3.1078),
	fit.Pt(1.2519, 4.1856), fit.Pt(1.2576, 3.3640), fit.Pt(1.6165, 6.0330), fit.Pt(1.6761, 5.8088),
	fit.Pt(2.0114, 10.5890), fit.Pt(2.0557, 11.5865), fit.Pt(2.1610, 11.8221), fit.Pt(2.6344, 26.5077),
}

var (
	dragInstructions = []string{
		"INSTRUCTIONS:",
		"- CLICK the BLUE point (P2)",
		"- DRAG the mouse to move it",
		"- The parabola updates automatically",
		"- The RED and GREEN points are fixed",
	}
	recordInstructions = []string{
		"INSTRUCTIONS:",
		"- CLICK the BLUE point (P2)",
		"- DRAG the mouse to move it",
		"- The animation is saved on release",
		"- The RED and GREEN points are fixed",
	}
	datafitInstructions = []string{
		"INSTRUCTIONS:",
		"- CLICK the GREEN point",
		"- DRAG up or down to change its y",
		"- O loads another point set (CSV)",
	}
)

// Demos lists the presets in menu order.
var Demos = []Demo{
	{
		Name:          "interpolate",
		Title:         "Real-time parabola - click and drag P2 (BLUE) - least squares",
		Points:        threePoints,
		Movable:       1,
		AllowXDrag:    true,
		ShowRSquared:  true,
		CaptureRadius: PointRadius,
		Solver:        fit.Fit,
		XMin:          0,
		XMax:          15,
		YMin:          -8,
		YMax:          8,
		FixedCurve:    true,
		Instructions:  dragInstructions,
	},
	{
		Name:            "record",
		Title:           "Real-time parabola - drag P2 (BLUE) to record an animation",
		Points:          threePoints,
		Movable:         1,
		AllowXDrag:      true,
		RecordAnimation: true,
		ShowRSquared:    true,
		CaptureRadius:   PointRadius,
		Solver:          fit.Fit,
		XMin:            0,
		XMax:            15,
		YMin:            -8,
		YMax:            8,
		FixedCurve:      true,
		Instructions:    recordInstructions,
	},
	{
		Name:          "datafit",
		Title:         "Quadratic fit (least squares) with one movable point",
		Points:        Samples,
		Movable:       len(Samples) / 2,
		AllowXDrag:    false,
		ShowRSquared:  true,
		CaptureRadius: SampleRadius,
		Solver:        fit.FitQR,
		XMin:          0.0003 - 0.5,
		XMax:          2.6344 + 0.5,
		YMin:          0.3328 - 1,
		YMax:          26.5077 + 5,
		CurveMargin:   0.5,
		Instructions:  datafitInstructions,
	},
	{
		Name:          "sketch",
		Title:         "Move P2 and watch the parabola in real time",
		Points:        threePoints,
		Movable:       1,
		AllowXDrag:    true,
		CaptureRadius: PointRadius,
		Solver:        fit.Fit,
		XMin:          0,
		XMax:          15,
		YMin:          -7,
		YMax:          7,
		CurveMargin:   1,
	},
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	for _, d := range Demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the demo names in menu order.
func Names() []string {
	names := make([]string, len(Demos))
	for i, d := range Demos {
		names[i] = d.Name
	}
	return names
}

// SessionOptions translates the preset into session options. Recording is
// left to the caller, which owns the rasterizer and exporter.
func (d Demo) SessionOptions() []session.Option {
	opts := []session.Option{
		session.WithCaptureRadius(d.CaptureRadius),
		session.WithXDrag(d.AllowXDrag),
		session.WithRSquared(d.ShowRSquared),
		session.WithSolver(d.Solver),
		session.WithSamples(CurveSamples),
	}
	if d.FixedCurve {
		return append(opts, session.WithCurveRange(d.XMin, d.XMax))
	}
	return append(opts, session.WithCurveMargin(d.CurveMargin))
}

// WithPoints returns a copy of d over a loaded point set. The middle point
// becomes movable and the axes are fitted around the data.
func (d Demo) WithPoints(pts []fit.Point) Demo {
	d.Points = pts
	d.Movable = len(pts) / 2
	d.FixedCurve = false
	if d.CurveMargin == 0 {
		d.CurveMargin = 0.5
	}

	lo, hi := fit.Extent(pts)
	ylo, yhi := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		ylo = min(ylo, p.Y)
		yhi = max(yhi, p.Y)
	}
	xpad := max((hi-lo)*0.1, d.CurveMargin)
	ypad := max((yhi-ylo)*0.15, 1)
	d.XMin, d.XMax = lo-xpad, hi+xpad
	d.YMin, d.YMax = ylo-ypad, yhi+ypad
	return d
}
