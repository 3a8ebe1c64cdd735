// Package stats provides the robust statistics behind outlier detection.
package stats

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile (0 <= p <= 1) of an ascending slice using
// linear interpolation between order statistics: h = (n-1)p.
// Returns NaN for an empty slice.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return lerp(sorted[i], sorted[i+1], h-lo)
}

// lerp interpolates from the nearer end point so that t = 0 and t = 1
// reproduce a and b exactly.
func lerp(a, b, t float64) float64 {
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t)
	}
	return a + diff*t
}

// Median returns the median of an ascending slice, averaging the two middle
// values for even lengths. Returns NaN for an empty slice.
func Median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Quartiles returns Q1, the median and Q3 of values, ignoring NaN.
func Quartiles(values []float64) (q1, q2, q3 float64) {
	sorted := SortedValues(values)
	return Quantile(sorted, 0.25), Median(sorted), Quantile(sorted, 0.75)
}

// SortedValues returns an ascending copy of values with NaN removed.
func SortedValues(values []float64) []float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)
	return sorted
}
