// Package features derives, encodes and selects model features.
package features

import (
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// Ratio defines a derived column: the sum of the numerator columns divided by
// the denominator column.
type Ratio struct {
	Name        string   `yaml:"name"`
	Numerators  []string `yaml:"numerators"`
	Denominator string   `yaml:"denominator"`
}

// DeriveRatios appends one column per ratio. A null operand makes the result
// null; a zero denominator yields an infinite value.
func DeriveRatios(t *table.Table, ratios ...Ratio) (*table.Table, error) {
	out := t
	for _, r := range ratios {
		if r.Name == "" || len(r.Numerators) == 0 || r.Denominator == "" {
			return nil, errors.Wrapf(table.ErrInvalidInput, "incomplete ratio %+v", r)
		}

		den, err := out.Floats(r.Denominator)
		if err != nil {
			return nil, errors.Wrapf(err, "ratio %q", r.Name)
		}
		sum := make([]float64, len(den))
		for _, name := range r.Numerators {
			num, err := out.Floats(name)
			if err != nil {
				return nil, errors.Wrapf(err, "ratio %q", r.Name)
			}
			for i, v := range num {
				sum[i] += v
			}
		}
		for i := range sum {
			sum[i] /= den[i]
		}

		out, err = out.WithColumn(series.New(sum, series.Float, r.Name))
		if err != nil {
			return nil, errors.Wrapf(err, "ratio %q", r.Name)
		}
	}
	return out, nil
}

// SelectFeatures projects t onto names. An empty list keeps every column.
func SelectFeatures(t *table.Table, names []string) (*table.Table, error) {
	if len(names) == 0 {
		return t.Copy(), nil
	}
	return t.Select(names...)
}
