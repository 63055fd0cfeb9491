package fit

import "fmt"

// Quality buckets an R² value for display.
type Quality int

const (
	Poor Quality = iota // R² ≤ 0.8
	Fair                // 0.8 < R² ≤ 0.95
	Good                // R² > 0.95
)

var qualityNames = [...]string{Poor: "Poor", Fair: "Fair", Good: "Good"}

// Grade returns the quality bucket of an R² value.
func Grade(r2 float64) Quality {
	switch {
	case r2 > 0.95:
		return Good
	case r2 > 0.8:
		return Fair
	default:
		return Poor
	}
}

func (q Quality) String() string {
	if q >= Poor && q <= Good {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}
