// Package clean removes outliers and normalizes categories in raw tables.
package clean

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/stats"
	"github.com/sartorproj/gocreditprep/table"
)

// OutlierResult describes one pass of the outlier filter.
type OutlierResult struct {
	Table   *table.Table
	Column  string // Column that was filtered, after any correction
	Summary stats.Summary
	Fence   stats.Fence
	Dropped int
}

// RemoveOutliers returns the rows of t whose value in column is null or lies
// within the skew-adjusted fence of that column. Other columns are untouched.
func RemoveOutliers(t *table.Table, column string) (*table.Table, error) {
	res, err := FilterOutliers(t, column)
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}

// FilterOutliers is RemoveOutliers with the statistics it used.
// The fence is computed from the non-null values of column on every call.
func FilterOutliers(t *table.Table, column string) (*OutlierResult, error) {
	values, err := t.Floats(column)
	if err != nil {
		return nil, err
	}

	summary := stats.Summarize(values)
	fence := stats.AdjustedFence(summary)

	kept, err := t.Filter(func(row int) bool {
		v := values[row]
		return math.IsNaN(v) || fence.Contains(v)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "filter %q", column)
	}

	return &OutlierResult{
		Table:   kept,
		Column:  column,
		Summary: summary,
		Fence:   fence,
		Dropped: t.Len() - kept.Len(),
	}, nil
}
