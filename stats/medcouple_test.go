package stats

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveMedcouple evaluates every kernel pair explicitly. Tied pairs receive
// sign(a + b - (k-1)) where a and b index the k zeros among the upper and
// lower halves.
func naiveMedcouple(values []float64) float64 {
	y := append([]float64(nil), values...)
	sort.Float64s(y)
	m := Median(y)

	var lower, upper []float64
	for _, v := range y {
		z := v - m
		if z <= 0 {
			lower = append(lower, z)
		}
		if z >= 0 {
			upper = append(upper, z)
		}
	}
	ties := 0
	for _, z := range lower {
		if z == 0 {
			ties++
		}
	}

	h := make([]float64, 0, len(lower)*len(upper))
	for a, u := range upper {
		for b, l := range lower {
			if u == 0 && l == 0 {
				s := a + (b - (len(lower) - ties)) - (ties - 1)
				switch {
				case s > 0:
					h = append(h, 1)
				case s < 0:
					h = append(h, -1)
				default:
					h = append(h, 0)
				}
				continue
			}
			h = append(h, (u+l)/(u-l))
		}
	}
	sort.Float64s(h)
	return Median(h)
}

func TestMedcoupleKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"spec example", []float64{1, 2, 3, 4, 5, 100}, 0},
		{"right skew", []float64{1, 2, 3, 10}, 1.0 / 3},
		{"left skew", []float64{-10, -3, -2, -1}, -1.0 / 3},
		{"symmetric", []float64{1, 2, 3, 4, 5}, 0},
		{"constant", []float64{4, 4, 4, 4}, 0},
		{"single", []float64{7}, 0},
		{"unsorted with NaN", []float64{10, math.NaN(), 3, 1, 2}, 1.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Medcouple(tt.values), 1e-12)
		})
	}
}

func TestMedcoupleEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Medcouple(nil)))
	assert.True(t, math.IsNaN(Medcouple([]float64{math.NaN()})))
}

func TestMedcoupleMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	generators := map[string]func() float64{
		"lognormal": func() float64 { return math.Exp(rng.NormFloat64()) },
		"normal":    func() float64 { return rng.NormFloat64() },
		"left":      func() float64 { return -math.Exp(rng.NormFloat64()) },
		"ties":      func() float64 { return float64(rng.Intn(5)) },
		"heavy":     func() float64 { return float64(rng.Intn(3)*rng.Intn(3)) + 1 },
	}

	for name, gen := range generators {
		for _, n := range []int{2, 3, 10, 51, 200, 301} {
			values := make([]float64, n)
			for i := range values {
				values[i] = gen()
			}
			want := naiveMedcouple(values)
			got := Medcouple(values)
			require.InDelta(t, want, got, 1e-12, "%s n=%d", name, n)
		}
	}
}

func TestMedcoupleBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]float64, 500)
	for i := range values {
		values[i] = math.Exp(2 * rng.NormFloat64())
	}

	mc := Medcouple(values)
	assert.True(t, mc > 0 && mc <= 1, "lognormal data should be right-skewed, got %f", mc)

	for i := range values {
		values[i] = -values[i]
	}
	assert.InDelta(t, -mc, Medcouple(values), 1e-12)
}

func TestMedcoupleIgnoresInf(t *testing.T) {
	assert.InDelta(t, Medcouple([]float64{1, 2, 3, 10}), Medcouple([]float64{1, 2, math.Inf(1), 3, 10}), 1e-12)
}
