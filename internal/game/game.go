// Package game hosts a session in an ebiten window: it turns mouse input into
// pointer events and draws the frames the session renders.
package game

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/parabola-drag/internal/anim"
	"github.com/iburimskiy/parabola-drag/internal/chart"
	"github.com/iburimskiy/parabola-drag/internal/config"
	"github.com/iburimskiy/parabola-drag/internal/session"
	"github.com/iburimskiy/parabola-drag/internal/sound"
	"github.com/iburimskiy/parabola-drag/internal/viewport"
)

type Game struct {
	demo    config.Demo
	view    viewport.Viewport
	session *session.Session
	frame   session.Frame
	chart   *chart.Rasterizer
	sound   *sound.Player

	face  *text.GoTextFace
	small *text.GoTextFace

	// input edge detection
	prevKey    map[ebiten.Key]bool
	lastCursor image.Point

	// drag feedback
	phase        float64
	captureStart time.Time

	status  string
	lastErr error
}

// New builds the window state for demo. player may be nil.
func New(demo config.Demo, player *sound.Player) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("game: load font: %w", err)
	}

	g := &Game{
		sound:   player,
		face:    &text.GoTextFace{Source: src, Size: 16},
		small:   &text.GoTextFace{Source: src, Size: 12},
		prevKey: map[ebiten.Key]bool{},
	}
	if err := g.load(demo); err != nil {
		return nil, err
	}
	return g, nil
}

// load (re)creates the session for demo and draws its first frame.
func (g *Game) load(demo config.Demo) error {
	view := viewport.Viewport{
		Rect: image.Rect(config.PlotLeft, config.PlotTop, config.PlotRight, config.PlotBottom),
		XMin: demo.XMin,
		XMax: demo.XMax,
		YMin: demo.YMin,
		YMax: demo.YMax,
	}
	raster := &chart.Rasterizer{
		Width:  config.FrameWidth,
		Height: config.FrameHeight,
		XMin:   demo.XMin,
		XMax:   demo.XMax,
		YMin:   demo.YMin,
		YMax:   demo.YMax,
		Title:  demo.Title,
	}

	opts := demo.SessionOptions()
	if demo.RecordAnimation {
		gif := &anim.GIFExporter{Path: config.GIFPath, Delay: config.GIFDelay, Scale: config.GIFScale}
		opts = append(opts, session.WithRecording(raster, announcer{next: gif, g: g}))
	}

	s, err := session.New(demo.Points, demo.Movable, g, opts...)
	if err != nil {
		return fmt.Errorf("game: %s: %w", demo.Name, err)
	}

	g.demo, g.view, g.chart, g.session = demo, view, raster, s
	s.Refresh()
	return nil
}

// Render implements session.Renderer. The frame is drawn on the next Draw.
func (g *Game) Render(f session.Frame) {
	g.frame = f
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	x, y, inside := g.view.ToData(float64(mouseX), float64(mouseY))
	ev := session.Event{X: x, Y: y, Inside: inside}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.session.State().Active() {
		g.session.HandlePointerDown(ev)
		if g.session.State().Active() {
			g.onGrab()
		}
	}

	cursor := image.Pt(mouseX, mouseY)
	if g.session.State().Active() && cursor != g.lastCursor {
		g.session.HandlePointerMove(ev)
	}
	g.lastCursor = cursor

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.session.State().Active() {
		err := g.session.HandlePointerUp(ev)
		g.onRelease()
		if err != nil {
			g.lastErr = err
			session.Logger().Warn("release failed", "err", err)
		}
	}

	switch {
	case justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ):
		return ebiten.Termination
	case justPressed(ebiten.KeyR):
		g.reset()
	case justPressed(ebiten.KeyO):
		if err := g.openDatasetDialog(); err != nil {
			g.lastErr = err
		}
	case justPressed(ebiten.KeyS):
		if err := g.saveSnapshotDialog(); err != nil {
			g.lastErr = err
		}
	}

	if g.session.State().Active() {
		g.phase += 0.01
	}
	return nil
}

func (g *Game) onGrab() {
	ebiten.SetCursorShape(ebiten.CursorShapePointer)
	g.sound.Play(sound.Grab)
	g.lastErr = nil
	if g.session.State() == session.Capturing {
		g.captureStart = time.Now()
		g.status = ""
	}
}

// reset restores the initial points, ending any drag in progress.
func (g *Game) reset() {
	if g.session.Reset() {
		g.onRelease()
	}
	g.status = "Points reset"
}

func (g *Game) onRelease() {
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	g.sound.Play(sound.Release)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// announcer reports a finished export to the user.
type announcer struct {
	next session.Exporter
	g    *Game
}

func (a announcer) Export(frames []image.Image) error {
	if err := a.next.Export(frames); err != nil {
		return err
	}
	a.g.sound.Play(sound.Saved)
	a.g.status = fmt.Sprintf("Animation saved as %s (%d frames)", config.GIFPath, len(frames))
	return nil
}
