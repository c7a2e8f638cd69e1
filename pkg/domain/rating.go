package domain

import (
	"math"

	"github.com/spf13/cast"
)

// RatingScale is an inclusive integer range with a fallback value.
type RatingScale struct {
	Min     int
	Max     int
	Default int
}

var (
	// EffortScale bounds task effort estimates.
	EffortScale = RatingScale{Min: 1, Max: 5, Default: 3}
	// ImpactScale bounds task impact estimates.
	ImpactScale = RatingScale{Min: 1, Max: 10, Default: 5}
)

// Clamp coerces v into the scale. Absent, zero and non-numeric values take
// the default; numeric strings are accepted and fractions are rounded.
func (s RatingScale) Clamp(v any) int {
	f, err := cast.ToFloat64E(v)
	if err != nil || f == 0 || math.IsNaN(f) {
		return s.Default
	}
	f = math.Round(f)
	f = math.Max(float64(s.Min), math.Min(float64(s.Max), f))
	return int(f)
}

// Contains reports whether n lies within the scale.
func (s RatingScale) Contains(n int) bool {
	return n >= s.Min && n <= s.Max
}
