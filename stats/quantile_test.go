package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 100}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"min", 0, 1},
		{"q1", 0.25, 2.25},
		{"median", 0.5, 3.5},
		{"q3", 0.75, 4.75},
		{"max", 1, 100},
		{"p90", 0.9, 52.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Quantile(sorted, tt.p), 1e-12)
		})
	}
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.25))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.75))
}

func TestQuartilesIgnoreNaN(t *testing.T) {
	q1, q2, q3 := Quartiles([]float64{5, math.NaN(), 1, 4, 3, 2, math.NaN()})

	assert.InDelta(t, 2.0, q1, 1e-12)
	assert.InDelta(t, 3.0, q2, 1e-12)
	assert.InDelta(t, 4.0, q3, 1e-12)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestSortedValues(t *testing.T) {
	in := []float64{3, math.NaN(), 1, 2}
	out := SortedValues(in)

	assert.Equal(t, []float64{1, 2, 3}, out)
	assert.Equal(t, 3.0, in[0], "input must not be reordered")
}
