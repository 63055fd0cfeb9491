// Package chart renders session frames off-screen with gonum/plot. The images
// feed the animation recorder and PNG snapshots.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/iburimskiy/parabola-drag/internal/fit"
	"github.com/iburimskiy/parabola-drag/internal/session"
)

var (
	CurveColor   = color.RGBA{R: 128, G: 0, B: 128, A: 204}
	FixedColor   = color.RGBA{R: 220, G: 30, B: 30, A: 230}
	MovableColor = color.RGBA{R: 30, G: 60, B: 220, A: 230}
)

// Rasterizer draws frames into fixed-size RGBA images over fixed axis bounds.
type Rasterizer struct {
	Width, Height int
	XMin, XMax    float64
	YMin, YMax    float64
	Title         string
}

var _ session.Rasterizer = (*Rasterizer)(nil)

// Rasterize renders f.
func (r *Rasterizer) Rasterize(f session.Frame) (image.Image, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("chart: invalid size %dx%d", r.Width, r.Height)
	}

	p, err := r.plot(f)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))
	return img, nil
}

// WritePNG renders f and encodes it as PNG.
func (r *Rasterizer) WritePNG(w io.Writer, f session.Frame) error {
	img, err := r.Rasterize(f)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}
	return nil
}

func (r *Rasterizer) plot(f session.Frame) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Equation
	if r.Title != "" {
		p.Title.Text = r.Title + "\n" + f.Equation
	}
	if f.HasRSquared {
		p.Title.Text += "    " + f.RSquaredText
	}
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	curve, err := plotter.NewLine(xys(f.Curve))
	if err != nil {
		return nil, fmt.Errorf("chart: curve: %w", err)
	}
	curve.LineStyle.Width = vg.Points(3)
	curve.LineStyle.Color = CurveColor
	p.Add(curve)
	p.Legend.Add("fitted parabola", curve)
	p.Legend.Top = true

	fixed := make([]fit.Point, 0, len(f.Points))
	for i, pt := range f.Points {
		if i != f.Movable {
			fixed = append(fixed, pt)
		}
	}
	if len(fixed) > 0 {
		sc, err := plotter.NewScatter(xys(fixed))
		if err != nil {
			return nil, fmt.Errorf("chart: points: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = FixedColor
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("fixed", sc)
	}

	if f.Movable >= 0 && f.Movable < len(f.Points) {
		mv := f.Points[f.Movable]
		sc, err := plotter.NewScatter(plotter.XYs{{X: mv.X, Y: mv.Y}})
		if err != nil {
			return nil, fmt.Errorf("chart: movable point: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = MovableColor
		sc.GlyphStyle.Radius = vg.Points(6)
		p.Add(sc)
		p.Legend.Add("movable", sc)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: mv.X, Y: mv.Y}},
			Labels: []string{fmt.Sprintf("(%.1f, %.1f)", mv.X, mv.Y)},
		})
		if err != nil {
			return nil, fmt.Errorf("chart: label: %w", err)
		}
		label.Offset = vg.Point{X: vg.Points(8), Y: vg.Points(8)}
		p.Add(label)
	}

	// Add widens the axes to fit the data; pin them afterwards.
	p.X.Min, p.X.Max = r.XMin, r.XMax
	p.Y.Min, p.Y.Max = r.YMin, r.YMax
	return p, nil
}

func xys(pts []fit.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = p.X, p.Y
	}
	return out
}
