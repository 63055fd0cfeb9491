// Package anim encodes captured frames as a looping GIF.
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"github.com/iburimskiy/parabola-drag/internal/session"
)

var ErrTooFewFrames = errors.New("anim: at least 2 frames are required")

// GIFExporter writes frames to Path, replacing any previous file.
type GIFExporter struct {
	Path  string
	Delay time.Duration

	// Scale resizes frames before quantization. Zero or one keeps the size.
	Scale float64
}

var _ session.Exporter = (*GIFExporter)(nil)

// Export encodes frames with a fixed delay and an infinite loop. The file is
// written next to Path and renamed over it once complete.
func (e *GIFExporter) Export(frames []image.Image) error {
	if len(frames) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewFrames, len(frames))
	}

	delay := int(e.Delay / (10 * time.Millisecond))
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, e.quantize(f))
		anim.Delay = append(anim.Delay, delay)
	}

	dir := filepath.Dir(e.Path)
	tmp, err := os.CreateTemp(dir, ".anim-*.gif")
	if err != nil {
		return fmt.Errorf("anim: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gif.EncodeAll(tmp, anim); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("anim: encode: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("anim: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("anim: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), e.Path); err != nil {
		return fmt.Errorf("anim: replace %s: %w", e.Path, err)
	}
	return nil
}

func (e *GIFExporter) quantize(src image.Image) *image.Paletted {
	b := src.Bounds()
	if e.Scale > 0 && e.Scale != 1 {
		w := max(1, int(float64(b.Dx())*e.Scale))
		h := max(1, int(float64(b.Dy())*e.Scale))
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		src, b = dst, dst.Bounds()
	}

	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(out, out.Bounds(), src, b.Min)
	return out
}
