// Package session keeps the point set of an interactive parabola fit and
// turns pointer events into freshly fitted frames.
//
// A Session is not safe for concurrent use. It is meant to be driven from the
// single goroutine that receives input events.
package session

import (
	"fmt"
	"image"
	"slices"

	"github.com/iburimskiy/parabola-drag/internal/fit"
)

// Event is a pointer event in data coordinates. Inside reports whether the
// pointer is over the plotting area.
type Event struct {
	X, Y   float64
	Inside bool
}

// Frame is everything a renderer needs to draw one update. Slices are owned
// by the frame.
type Frame struct {
	Fit          fit.Result
	RSquared     float64
	HasRSquared  bool
	Curve        []fit.Point
	Points       []fit.Point
	Movable      int
	Equation     string
	RSquaredText string
	State        State
}

// Renderer draws frames. It is called synchronously on every update.
type Renderer interface {
	Render(f Frame)
}

// Rasterizer turns a frame into a still image for recording.
type Rasterizer interface {
	Rasterize(f Frame) (image.Image, error)
}

// Exporter persists the frames captured during one drag gesture.
type Exporter interface {
	Export(frames []image.Image) error
}

// Session owns a point set with one movable point.
type Session struct {
	opts     options
	renderer Renderer

	initial []fit.Point
	points  []fit.Point
	movable int
	state   State
	frames  []image.Image
}

// New creates a session over a copy of points. movable is the index of the
// point that can be dragged.
func New(points []fit.Point, movable int, r Renderer, opts ...Option) (*Session, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if movable < 0 || movable >= len(points) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrMovableIndex, movable, len(points))
	}
	if r == nil {
		return nil, ErrNoRenderer
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.record && (o.rasterizer == nil || o.exporter == nil) {
		return nil, ErrNoRecorder
	}

	return &Session{
		opts:     o,
		renderer: r,
		initial:  slices.Clone(points),
		points:   slices.Clone(points),
		movable:  movable,
	}, nil
}

// State returns the current drag state.
func (s *Session) State() State { return s.state }

// Movable returns the index of the draggable point.
func (s *Session) Movable() int { return s.movable }

// Points returns a copy of the current point set.
func (s *Session) Points() []fit.Point { return slices.Clone(s.points) }

// Recording reports whether drags are captured for export.
func (s *Session) Recording() bool { return s.opts.record }

// XDrag reports whether dragging moves the x coordinate.
func (s *Session) XDrag() bool { return s.opts.allowXDrag }

// Buffered returns the number of frames captured in the current gesture.
func (s *Session) Buffered() int { return len(s.frames) }

// Frame fits the current points and builds a frame without rendering it.
func (s *Session) Frame() Frame {
	r := s.opts.solver(s.points)

	lo, hi := s.curveRange()
	f := Frame{
		Fit:      r,
		Curve:    fit.Sample(r, lo, hi, s.opts.samples),
		Points:   slices.Clone(s.points),
		Movable:  s.movable,
		Equation: r.Equation(),
		State:    s.state,
	}
	if s.opts.rSquared {
		f.RSquared = fit.RSquared(s.points, r)
		f.HasRSquared = true
		f.RSquaredText = fit.FormatRSquared(f.RSquared)
	}
	return f
}

func (s *Session) curveRange() (lo, hi float64) {
	if s.opts.fixedRange {
		return s.opts.lo, s.opts.hi
	}
	lo, hi = fit.Extent(s.points)
	return lo - s.opts.margin, hi + s.opts.margin
}

// Refresh renders the current state.
func (s *Session) Refresh() {
	s.renderer.Render(s.Frame())
}

// Reset restores the initial coordinates, drops captured frames, returns to
// Idle and renders. It reports whether a drag was cancelled.
func (s *Session) Reset() bool {
	cancelled := s.state.Active()
	copy(s.points, s.initial)
	s.frames = nil
	s.state = Idle
	Logger().Debug("session reset", "cancelled", cancelled)
	s.Refresh()
	return cancelled
}

// HandlePointerDown starts a drag when the pointer lands within the capture
// radius of the movable point.
func (s *Session) HandlePointerDown(ev Event) {
	if s.state != Idle || !ev.Inside {
		return
	}
	d := s.points[s.movable].Distance(fit.Pt(ev.X, ev.Y))
	if d >= s.opts.captureRadius {
		return
	}

	s.state = Dragging
	if s.opts.record {
		s.state = Capturing
	}
	Logger().Debug("drag started", "state", s.state, "distance", d)
}

// HandlePointerMove moves the dragged point, refits and renders. Events
// outside the plotting area are ignored.
func (s *Session) HandlePointerMove(ev Event) {
	if !s.state.Active() || !ev.Inside {
		return
	}

	p := &s.points[s.movable]
	if s.opts.allowXDrag {
		p.X = ev.X
	}
	p.Y = ev.Y

	f := s.Frame()
	s.renderer.Render(f)

	if s.state != Capturing {
		return
	}
	img, err := s.opts.rasterizer.Rasterize(f)
	if err != nil {
		Logger().Warn("frame dropped", "err", err)
		return
	}
	s.frames = append(s.frames, img)
}

// HandlePointerUp ends a drag. A recording gesture with at least two frames
// is exported. The frame buffer is always released.
func (s *Session) HandlePointerUp(Event) error {
	prev := s.state
	s.state = Idle
	if prev != Capturing {
		if prev == Dragging {
			Logger().Debug("drag ended")
		}
		return nil
	}

	frames := s.frames
	s.frames = nil
	if len(frames) < 2 {
		Logger().Debug("capture too short, nothing exported", "frames", len(frames))
		return nil
	}
	if err := s.opts.exporter.Export(frames); err != nil {
		return fmt.Errorf("session: export %d frames: %w", len(frames), err)
	}
	Logger().Info("animation exported", "frames", len(frames))
	return nil
}
