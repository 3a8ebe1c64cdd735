package stats

import (
	"math"
	"sort"
)

// Medcouple returns the medcouple of values, a robust measure of skewness in
// [-1, 1]. It is the median of the kernel
//
//	h(xi, xj) = ((xj - m) - (m - xi)) / (xj - xi)
//
// over every pair with xi <= m <= xj, where m is the median. Pairs in which
// both values equal m take the sign rule of Brys, Hubert and Struyf (2004).
// With an even number of pairs the two middle kernel values are averaged.
//
// NaN and infinite values are ignored. Returns NaN when nothing remains.
// Runs in O(n log n) time without materializing the pairs.
func Medcouple(values []float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	k := newKernel(sorted, Median(sorted))
	total := len(k.plus) * len(k.minus)
	if total%2 == 1 {
		return k.largest(total / 2)
	}
	return (k.largest(total/2-1) + k.largest(total/2)) / 2
}

// kernel is the implicit matrix h(i, j) with rows over the values at or above
// the median and columns over the values at or below it, both centred on the
// median and in descending order. Entries are non-increasing along rows and
// columns.
type kernel struct {
	plus  []float64
	minus []float64
}

func newKernel(sorted []float64, median float64) *kernel {
	k := &kernel{}
	for i := len(sorted) - 1; i >= 0; i-- {
		z := sorted[i] - median
		if z >= 0 {
			k.plus = append(k.plus, z)
		}
		if z <= 0 {
			k.minus = append(k.minus, z)
		}
	}
	return k
}

func (k *kernel) at(i, j int) float64 {
	a, b := k.plus[i], k.minus[j]
	if a == 0 && b == 0 {
		s := len(k.plus) - 1 - i - j
		switch {
		case s > 0:
			return 1
		case s < 0:
			return -1
		}
		return 0
	}
	return (a + b) / (a - b)
}

type weightedValue struct {
	value  float64
	weight int
}

// largest returns the r-th largest kernel entry (r = 0 is the maximum).
//
// Each row keeps a window [left, right] of columns that may still hold the
// answer. A weighted median of the row medians is used as pivot and every
// window is narrowed to the entries above or below it, until at most one
// candidate per row is left on average.
func (k *kernel) largest(r int) float64 {
	p, q := len(k.plus), len(k.minus)
	left := make([]int, p)
	right := make([]int, p)
	for i := range right {
		right[i] = q - 1
	}
	leftTotal, rightTotal := 0, p*q

	for rightTotal-leftTotal > p {
		candidates := make([]weightedValue, 0, p)
		for i := 0; i < p; i++ {
			if left[i] <= right[i] {
				candidates = append(candidates, weightedValue{
					value:  k.at(i, (left[i]+right[i])/2),
					weight: right[i] - left[i] + 1,
				})
			}
		}
		pivot := weightedMedian(candidates)

		above := k.lastAbove(pivot)
		aboveTotal := p
		for _, j := range above {
			aboveTotal += j
		}
		atLeast := k.countAtLeast(pivot)
		atLeastTotal := 0
		for _, c := range atLeast {
			atLeastTotal += c
		}

		switch {
		case r < aboveTotal:
			right, rightTotal = above, aboveTotal
		case r >= atLeastTotal:
			left, leftTotal = atLeast, atLeastTotal
		default:
			return pivot
		}
	}

	rest := make([]float64, 0, rightTotal-leftTotal)
	for i := 0; i < p; i++ {
		for j := left[i]; j <= right[i]; j++ {
			rest = append(rest, k.at(i, j))
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(rest)))
	return rest[r-leftTotal]
}

// lastAbove returns, per row, the last column whose entry exceeds u, or -1.
func (k *kernel) lastAbove(u float64) []int {
	p, q := len(k.plus), len(k.minus)
	out := make([]int, p)
	j := 0
	for i := p - 1; i >= 0; i-- {
		for j < q && k.at(i, j) > u {
			j++
		}
		out[i] = j - 1
	}
	return out
}

// countAtLeast returns, per row, the number of entries greater than or equal to u.
func (k *kernel) countAtLeast(u float64) []int {
	p := len(k.plus)
	out := make([]int, p)
	j := len(k.minus) - 1
	for i := 0; i < p; i++ {
		for j >= 0 && k.at(i, j) < u {
			j--
		}
		out[i] = j + 1
	}
	return out
}

func weightedMedian(values []weightedValue) float64 {
	sort.Slice(values, func(a, b int) bool {
		return values[a].value < values[b].value
	})
	total := 0
	for _, v := range values {
		total += v.weight
	}
	acc := 0
	for _, v := range values {
		acc += v.weight
		if 2*acc >= total {
			return v.value
		}
	}
	return values[len(values)-1].value
}
