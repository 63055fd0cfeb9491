package config

import "time"

const (
	WindowWidth  = 1200
	WindowHeight = 800

	// Plot area inside the window, in pixels.
	PlotLeft   = 70
	PlotTop    = 60
	PlotRight  = WindowWidth - 30
	PlotBottom = WindowHeight - 60

	CurveSamples = 300

	// Capture radii, in data units.
	PointRadius  = 0.5
	SampleRadius = 0.3

	// Dashed ring drawn around the movable point, in data units.
	RingRadius = 0.25

	// Animation export.
	GIFPath  = "parabola_animation.gif"
	GIFDelay = 100 * time.Millisecond
	GIFScale = 0.5

	// Off-screen frame size for recording and snapshots.
	FrameWidth  = 960
	FrameHeight = 640

	// Visualization parameters
	GridTicks        = 8
	CurveWidth       = 3
	FixedPointSize   = 7
	MovablePointSize = 10
	LabelOffset      = 14
)
