// Package dataset loads point sets from CSV files with two numeric columns, x and y.
//
// A first row that does not parse as numbers is treated as a header. Lines
// starting with '#' are comments.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iburimskiy/parabola-drag/internal/fit"
)

// MinPoints is the smallest point set that determines a parabola.
const MinPoints = 3

var (
	ErrTooFewPoints = errors.New("dataset: too few points")
	ErrMalformed    = errors.New("dataset: malformed row")

	errNotFinite = errors.New("value is not finite")
)

// Read parses points from r.
func Read(r io.Reader) ([]fit.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var pts []fit.Point
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w %d: want 2 columns, got %d", ErrMalformed, row, len(rec))
		}

		p, err := parse(rec[0], rec[1])
		if err != nil {
			if len(pts) == 0 && row == 1 && !errors.Is(err, errNotFinite) {
				continue // header
			}
			return nil, fmt.Errorf("%w %d: %w", ErrMalformed, row, err)
		}
		pts = append(pts, p)
	}

	if len(pts) < MinPoints {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewPoints, len(pts), MinPoints)
	}
	return pts, nil
}

// Load reads points from the named file.
func Load(path string) ([]fit.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

func parse(xs, ys string) (fit.Point, error) {
	x, err := parseFinite(xs)
	if err != nil {
		return fit.Point{}, err
	}
	y, err := parseFinite(ys)
	if err != nil {
		return fit.Point{}, err
	}
	return fit.Pt(x, y), nil
}

func parseFinite(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, errNotFinite)
	}
	return v, nil
}
