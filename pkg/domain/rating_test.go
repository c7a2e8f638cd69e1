package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingScale_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		scale RatingScale
		in    any
		want  int
	}{
		{"in range", EffortScale, float64(4), 4},
		{"above max", EffortScale, float64(42), 5},
		{"below min", EffortScale, float64(-3), 1},
		{"missing", EffortScale, nil, 3},
		{"zero takes default", EffortScale, float64(0), 3},
		{"non numeric", EffortScale, "lots", 3},
		{"numeric string", ImpactScale, "7", 7},
		{"fraction rounds", ImpactScale, 6.6, 7},
		{"small fraction clamps up", EffortScale, 0.4, 1},
		{"impact above max", ImpactScale, float64(11), 10},
		{"impact missing", ImpactScale, nil, 5},
		{"nan", ImpactScale, math.NaN(), 5},
		{"int type", ImpactScale, 9, 9},
		{"object", ImpactScale, map[string]any{"v": 1}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scale.Clamp(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.scale.Contains(got))
		})
	}
}
