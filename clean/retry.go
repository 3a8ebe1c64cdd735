package clean

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// DefaultMaxRetries is the default number of attempts at finding a column.
const DefaultMaxRetries = 3

// Resolver proposes a replacement for a column that was not found. The error
// carries the missing name and the attempts made so far. Returning an error
// abandons the operation.
type Resolver func(missing *table.ColumnNotFoundError) (string, error)

// ExhaustedError is returned once every attempt at resolving a column failed.
// It matches table.ErrInvalidInput and unwraps to the last ColumnNotFoundError.
type ExhaustedError struct {
	Last *table.ColumnNotFoundError
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no valid column provided: %v", e.Last)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == table.ErrInvalidInput
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Retrier runs column operations, asking Resolve for a corrected name each
// time the column is missing, up to MaxRetries attempts in total.
// A nil Resolve makes the first failure final.
type Retrier struct {
	MaxRetries int
	Resolve    Resolver
}

// Do calls op with column, and with each corrected name, until op succeeds,
// fails for another reason, or the attempts run out. It returns the column
// name op last ran with.
func (r Retrier) Do(column string, op func(column string) error) (string, error) {
	limit := r.MaxRetries
	if limit <= 0 {
		limit = DefaultMaxRetries
	}

	for attempt := 1; ; attempt++ {
		err := op(column)
		if err == nil {
			return column, nil
		}
		var missing *table.ColumnNotFoundError
		if !errors.As(err, &missing) {
			return column, err
		}

		missing = &table.ColumnNotFoundError{Column: missing.Column, Attempts: attempt}
		if attempt >= limit || r.Resolve == nil {
			return column, &ExhaustedError{Last: missing}
		}
		next, err := r.Resolve(missing)
		if err != nil {
			return column, errors.Wrapf(&ExhaustedError{Last: missing}, "resolve: %v", err)
		}
		column = next
	}
}

// FilterOutliers runs FilterOutliers, correcting the column name on the way.
func (r Retrier) FilterOutliers(t *table.Table, column string) (*OutlierResult, error) {
	var res *OutlierResult
	_, err := r.Do(column, func(c string) error {
		var err error
		res, err = FilterOutliers(t, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// StandardizeCategories runs StandardizeCategories, correcting the column
// name on the way. It returns the column that was rewritten.
func (r Retrier) StandardizeCategories(t *table.Table, column string, replacements map[string]string) (*table.Table, string, error) {
	var out *table.Table
	used, err := r.Do(column, func(c string) error {
		var err error
		out, err = StandardizeCategories(t, c, replacements)
		return err
	})
	if err != nil {
		return nil, used, err
	}
	return out, used, nil
}
