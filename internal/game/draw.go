package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/parabola-drag/internal/config"
	"github.com/iburimskiy/parabola-drag/internal/fit"
	"github.com/iburimskiy/parabola-drag/internal/session"
	"github.com/iburimskiy/parabola-drag/internal/viewport"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawTitle(screen)
	g.drawAxes(screen)

	plot := screen.SubImage(g.view.Rect).(*ebiten.Image)
	g.drawCurve(plot)
	g.drawPoints(plot)

	g.drawEquation(screen)
	g.drawInstructions(screen)
	g.drawStatus(screen)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	w, _ := text.Measure(g.demo.Title, g.face, 0)
	g.drawText(screen, g.demo.Title, g.face, (config.WindowWidth-w)/2, 18, textColor)
}

func (g *Game) drawAxes(screen *ebiten.Image) {
	r := g.view.Rect
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x0, y0, w, h, plotColor, false)

	for _, t := range viewport.Ticks(g.view.XMin, g.view.XMax, config.GridTicks) {
		px, _ := g.view.ToScreen(t, 0)
		vector.StrokeLine(screen, float32(px), y0, float32(px), y0+h, 1, gridColor, false)
		label := formatTick(t)
		ebitenutil.DebugPrintAt(screen, label, int(px)-len(label)*3, r.Max.Y+4)
	}
	for _, t := range viewport.Ticks(g.view.YMin, g.view.YMax, config.GridTicks) {
		_, py := g.view.ToScreen(0, t)
		vector.StrokeLine(screen, x0, float32(py), x0+w, float32(py), 1, gridColor, false)
		label := formatTick(t)
		ebitenutil.DebugPrintAt(screen, label, r.Min.X-len(label)*6-6, int(py)-8)
	}

	vector.StrokeRect(screen, x0, y0, w, h, 1.5, axisColor, false)
	ebitenutil.DebugPrintAt(screen, "X", r.Min.X+r.Dx()/2, r.Max.Y+22)
	ebitenutil.DebugPrintAt(screen, "Y", r.Min.X-60, r.Min.Y+r.Dy()/2)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
}

func (g *Game) drawCurve(plot *ebiten.Image) {
	curve := g.frame.Curve
	for i := 1; i < len(curve); i++ {
		x0, y0 := g.view.ToScreen(curve[i-1].X, curve[i-1].Y)
		x1, y1 := g.view.ToScreen(curve[i].X, curve[i].Y)
		if !finiteSegment(x0, y0, x1, y1) {
			continue
		}
		vector.StrokeLine(plot, float32(x0), float32(y0), float32(x1), float32(y1), config.CurveWidth, curveColor, true)
	}
}

// finiteSegment rejects segments far outside the plot; float32 conversion
// of huge coordinates makes the rasterizer misbehave.
func finiteSegment(vals ...float64) bool {
	const limit = 1e6
	for _, v := range vals {
		if math.IsNaN(v) || math.Abs(v) > limit {
			return false
		}
	}
	return true
}

func (g *Game) drawPoints(plot *ebiten.Image) {
	pts := g.frame.Points
	labelAll := len(pts) <= 5

	for i, p := range pts {
		if i == g.frame.Movable {
			continue
		}
		px, py := g.view.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(plot, float32(px), float32(py), config.FixedPointSize, pointColor(i, len(pts), g.frame.Movable), true)
		vector.StrokeCircle(plot, float32(px), float32(py), config.FixedPointSize, 1.5, outlineColor, true)
		if labelAll {
			g.drawPointLabel(plot, fmt.Sprintf("P%d (fixed)", i+1), p, px, py, false)
		}
	}

	if g.frame.Movable < 0 || g.frame.Movable >= len(pts) {
		return
	}
	p := pts[g.frame.Movable]
	px, py := g.view.ToScreen(p.X, p.Y)
	clr := movableColor
	if !labelAll {
		clr = color.RGBA{R: 30, G: 160, B: 60, A: 230}
	}
	vector.DrawFilledCircle(plot, float32(px), float32(py), config.MovablePointSize, clr, true)
	vector.StrokeCircle(plot, float32(px), float32(py), config.MovablePointSize, 2, outlineColor, true)
	g.drawRing(plot, px, py)

	name := "DRAG ME!"
	if labelAll {
		name = fmt.Sprintf("P%d (DRAG ME!)", g.frame.Movable+1)
	}
	g.drawPointLabel(plot, name, p, px, py, true)
}

// drawRing draws a dashed ellipse of config.RingRadius data units around the
// movable point. Its hue cycles while a drag is in progress.
func (g *Game) drawRing(dst *ebiten.Image, cx, cy float64) {
	sx, sy := g.view.PixelsPerUnit()
	rx := math.Max(config.RingRadius*sx, config.MovablePointSize+4)
	ry := math.Max(config.RingRadius*sy, config.MovablePointSize+4)

	var clr color.Color = movableColor
	if g.session.State().Active() {
		r, gv, b := hsvToRgb(g.phase*360, 0.8, 0.9)
		clr = color.RGBA{R: r, G: gv, B: b, A: 220}
	}

	const dashes = 24
	for i := 0; i < dashes; i += 2 {
		a0 := float64(i) * 2 * math.Pi / dashes
		a1 := float64(i+1) * 2 * math.Pi / dashes
		vector.StrokeLine(dst,
			float32(cx+rx*math.Cos(a0)), float32(cy+ry*math.Sin(a0)),
			float32(cx+rx*math.Cos(a1)), float32(cy+ry*math.Sin(a1)),
			3, clr, true)
	}
}

func (g *Game) drawPointLabel(dst *ebiten.Image, name string, p fit.Point, px, py float64, emphasize bool) {
	label := fmt.Sprintf("%s\n(%.1f, %.1f)", name, p.X, p.Y)
	face := g.small
	offset := float64(config.LabelOffset)
	if emphasize {
		offset += 10
	}
	g.drawBadge(dst, label, face, px+offset, py-offset-24, color.RGBA{R: 255, G: 255, B: 255, A: 200}, nil)
}

func (g *Game) drawEquation(screen *ebiten.Image) {
	r := g.view.Rect
	x, y := float64(r.Min.X+12), float64(r.Min.Y+12)

	eq := g.frame.Equation
	if g.frame.Fit.Degenerate {
		eq += "  (degenerate)"
	}
	_, h := g.drawBadge(screen, eq, g.face, x, y, wheat, nil)
	if !g.frame.HasRSquared {
		return
	}

	y += h + 14
	bg := qualityColor(fit.Grade(g.frame.RSquared))
	bw, bh := g.drawBadge(screen, g.frame.RSquaredText, g.face, x, y, bg, nil)

	// Gauge under the R² badge.
	gy := float32(y + bh + 2)
	vector.DrawFilledRect(screen, float32(x-6), gy, float32(bw), 4, gridColor, false)
	vector.DrawFilledRect(screen, float32(x-6), gy, float32(bw*clamp01(g.frame.RSquared)), 4, axisColor, false)
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	if len(g.demo.Instructions) == 0 {
		return
	}
	msg := strings.Join(g.demo.Instructions, "\n")
	w, h := text.Measure(msg, g.small, g.small.Size*1.4)
	r := g.view.Rect
	x := float64(r.Max.X) - w - 18
	y := float64(r.Max.Y) - h - 18
	g.drawBadge(screen, msg, g.small, x, y, lightCyan, navy)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var line string
	switch {
	case g.session.State() == session.Capturing:
		elapsed := formatDuration(time.Since(g.captureStart))
		line = fmt.Sprintf("REC %s  %d frames", elapsed, g.session.Buffered())
		vector.DrawFilledCircle(screen, 16, config.WindowHeight-16, 6, recordColor, true)
		g.drawText(screen, line, g.small, 28, config.WindowHeight-24, recordColor)
		return
	case g.lastErr != nil:
		g.drawText(screen, "Error: "+g.lastErr.Error(), g.small, 12, config.WindowHeight-24, errorColor)
		return
	case g.status != "":
		line = g.status
	default:
		line = "R: reset  O: open points  S: snapshot  Esc/Q: quit"
	}
	g.drawText(screen, line, g.small, 12, config.WindowHeight-24, textColor)
}

// drawBadge draws msg on a padded rectangle and returns the rectangle size.
func (g *Game) drawBadge(dst *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, bg color.Color, border color.Color) (float64, float64) {
	const pad = 6
	spacing := face.Size * 1.4
	w, h := text.Measure(msg, face, spacing)
	bw, bh := w+2*pad, h+2*pad
	vector.DrawFilledRect(dst, float32(x-pad), float32(y-pad), float32(bw), float32(bh), bg, true)
	if border != nil {
		vector.StrokeRect(dst, float32(x-pad), float32(y-pad), float32(bw), float32(bh), 2, border, true)
	}
	g.drawText(dst, msg, face, x, y, textColor)
	return bw, bh
}

func (g *Game) drawText(dst *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Size * 1.4
	text.Draw(dst, msg, face, op)
}
