package sampling

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// Split partitions t into a train and a test table, stratified by target.
// The test table receives ceil(testFraction * n) rows and the train table the
// rest; each class keeps its share of rows in both, up to rounding. The target
// column is moved to the last position in both outputs.
func Split(t *table.Table, target string, testFraction float64, seed int64) (train, test *table.Table, err error) {
	labels, err := t.Labels(target)
	if err != nil {
		return nil, nil, err
	}
	if !(testFraction > 0 && testFraction < 1) {
		return nil, nil, errors.Wrapf(table.ErrInvalidInput, "test fraction %g must be in (0, 1)", testFraction)
	}

	n := t.Len()
	nTest := int(math.Ceil(testFraction * float64(n)))
	nTrain := n - nTest
	if nTrain == 0 {
		return nil, nil, errors.Wrapf(table.ErrInvalidInput,
			"with %d samples and test fraction %g the train set would be empty", n, testFraction)
	}

	rng := rand.New(rand.NewSource(seed))
	trainRows, testRows, err := StratifiedShuffleSplit(labels, nTrain, nTest, rng)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "stratify by %q", target)
	}

	ordered, err := t.MoveToEnd(target)
	if err != nil {
		return nil, nil, err
	}
	if train, err = ordered.Subset(trainRows); err != nil {
		return nil, nil, err
	}
	if test, err = ordered.Subset(testRows); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
