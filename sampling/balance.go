package sampling

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// Balance downsamples the rows where target is 0 to the number of rows where
// target is 1. The kept class-0 rows are drawn stratified by the stratify
// column (null is a stratum of its own) and returned in random order,
// followed by every class-1 row.
//
// target must be numeric with both 0 and 1 observed and no other value.
// The same input and seed always give the same output.
func Balance(t *table.Table, target, stratify string, seed int64) (*table.Table, error) {
	y, err := binaryTarget(t, target)
	if err != nil {
		return nil, err
	}
	strata, err := t.Labels(stratify)
	if err != nil {
		return nil, err
	}

	var class0, class1 []int
	for i, v := range y {
		if v == 0 {
			class0 = append(class0, i)
		} else {
			class1 = append(class1, i)
		}
	}
	if len(class1) > len(class0) {
		return nil, errors.Wrapf(table.ErrInvalidInput,
			"class 1 has %d rows, more than the %d rows of class 0", len(class1), len(class0))
	}

	keep := class0
	if len(class1) < len(class0) {
		labels := make([]string, len(class0))
		for k, row := range class0 {
			labels[k] = strata[row]
		}
		rng := rand.New(rand.NewSource(seed))
		picked, _, err := StratifiedShuffleSplit(labels, len(class1), len(class0)-len(class1), rng)
		if err != nil {
			return nil, errors.Wrapf(err, "stratify class 0 by %q", stratify)
		}
		keep = make([]int, len(picked))
		for k, p := range picked {
			keep[k] = class0[p]
		}
	}

	sample, err := t.Subset(keep)
	if err != nil {
		return nil, err
	}
	minority, err := t.Subset(class1)
	if err != nil {
		return nil, err
	}
	return sample.Append(minority)
}

func binaryTarget(t *table.Table, target string) ([]float64, error) {
	y, err := t.Floats(target)
	if err != nil {
		return nil, err
	}
	var zeros, ones int
	for i, v := range y {
		switch {
		case v == 0:
			zeros++
		case v == 1:
			ones++
		case math.IsNaN(v):
			return nil, errors.Wrapf(table.ErrInvalidInput, "target %q is null at row %d", target, i)
		default:
			return nil, errors.Wrapf(table.ErrInvalidInput, "target %q is not binary: found %g at row %d", target, v, i)
		}
	}
	if zeros == 0 || ones == 0 {
		return nil, errors.Wrapf(table.ErrInvalidInput,
			"target %q must contain both classes, found %d zeros and %d ones", target, zeros, ones)
	}
	return y, nil
}
