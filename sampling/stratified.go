// Package sampling balances classes and splits tables into train and test sets.
package sampling

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// StratifiedShuffleSplit draws nTrain and nTest distinct positions of labels
// such that every class keeps, up to rounding, its share of the population in
// both draws. Both results are in random order.
//
// Every class needs at least two members, and nTrain and nTest must each be at
// least the number of classes.
func StratifiedShuffleSplit(labels []string, nTrain, nTest int, rng *rand.Rand) (train, test []int, err error) {
	if nTrain+nTest > len(labels) {
		return nil, nil, errors.Wrapf(table.ErrInvalidInput,
			"train size %d plus test size %d exceeds %d samples", nTrain, nTest, len(labels))
	}

	classes, members := groupByClass(labels)
	counts := make([]int, len(classes))
	for i, m := range members {
		if len(m) < 2 {
			return nil, nil, errors.Wrapf(table.ErrInvalidInput,
				"class %q has %d member(s), every class needs at least 2", classes[i], len(m))
		}
		counts[i] = len(m)
	}
	if nTrain < len(classes) {
		return nil, nil, errors.Wrapf(table.ErrInvalidInput,
			"train size %d is smaller than the number of classes %d", nTrain, len(classes))
	}
	if nTest < len(classes) {
		return nil, nil, errors.Wrapf(table.ErrInvalidInput,
			"test size %d is smaller than the number of classes %d", nTest, len(classes))
	}

	trainCounts := approximateMode(counts, nTrain, rng)
	remaining := make([]int, len(counts))
	for i := range counts {
		remaining[i] = counts[i] - trainCounts[i]
	}
	testCounts := approximateMode(remaining, nTest, rng)

	train = make([]int, 0, nTrain)
	test = make([]int, 0, nTest)
	for i, m := range members {
		perm := rng.Perm(len(m))
		for _, p := range perm[:trainCounts[i]] {
			train = append(train, m[p])
		}
		for _, p := range perm[trainCounts[i] : trainCounts[i]+testCounts[i]] {
			test = append(test, m[p])
		}
	}
	rng.Shuffle(len(train), func(a, b int) { train[a], train[b] = train[b], train[a] })
	rng.Shuffle(len(test), func(a, b int) { test[a], test[b] = test[b], test[a] })
	return train, test, nil
}

// groupByClass returns the distinct labels in ascending order and, for each,
// the positions holding it in ascending order.
func groupByClass(labels []string) ([]string, [][]int) {
	byClass := make(map[string][]int)
	for i, l := range labels {
		byClass[l] = append(byClass[l], i)
	}
	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	members := make([][]int, len(classes))
	for i, c := range classes {
		members[i] = byClass[c]
	}
	return classes, members
}

// approximateMode splits draws across classes in proportion to counts.
// Each class first gets the floor of its share; the draws left over go to
// the classes with the largest fractional parts, ties broken at random.
func approximateMode(counts []int, draws int, rng *rand.Rand) []int {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]int, len(counts))
	if total == 0 || draws <= 0 {
		return out
	}

	remainders := make([]float64, len(counts))
	need := draws
	for i, c := range counts {
		continuous := float64(c) / float64(total) * float64(draws)
		floor := math.Floor(continuous)
		out[i] = int(floor)
		remainders[i] = continuous - floor
		need -= out[i]
	}
	if need <= 0 {
		return out
	}

	distinct := append([]float64(nil), remainders...)
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))
	for k, r := range distinct {
		if k > 0 && r == distinct[k-1] {
			continue
		}
		var tied []int
		for i, v := range remainders {
			if v == r && out[i] < counts[i] {
				tied = append(tied, i)
			}
		}
		rng.Shuffle(len(tied), func(a, b int) { tied[a], tied[b] = tied[b], tied[a] })
		if len(tied) > need {
			tied = tied[:need]
		}
		for _, i := range tied {
			out[i]++
		}
		need -= len(tied)
		if need == 0 {
			break
		}
	}
	return out
}
