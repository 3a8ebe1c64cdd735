package features

import (
	"math"

	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// OrdinalEncoding maps the categories of an ordered column to integers,
// e.g. credit bureau grades A..D to 1..4.
type OrdinalEncoding struct {
	Column string         `yaml:"column"`
	Levels map[string]int `yaml:"levels"`
	// NullLevel, when set, is the level assigned to null cells.
	NullLevel *int `yaml:"null_level"`
}

// EncodeOrdinal replaces enc.Column with its encoded levels. Categories
// missing from enc.Levels become null. The column is Int when every cell is
// encoded and Float (with NaN) otherwise.
func EncodeOrdinal(t *table.Table, enc OrdinalEncoding) (*table.Table, error) {
	if len(enc.Levels) == 0 {
		return nil, errors.Wrap(table.ErrInvalidInput, "ordinal encoding map is empty")
	}
	labels, err := t.Labels(enc.Column)
	if err != nil {
		return nil, err
	}

	levels := make([]float64, len(labels))
	complete := true
	for i, label := range labels {
		var level int
		var ok bool
		if label == table.NullLabel {
			if enc.NullLevel != nil {
				level, ok = *enc.NullLevel, true
			}
		} else {
			level, ok = enc.Levels[label]
		}
		if !ok {
			levels[i] = math.NaN()
			complete = false
			continue
		}
		levels[i] = float64(level)
	}

	if !complete {
		return t.WithColumn(series.New(levels, series.Float, enc.Column))
	}
	ints := make([]int, len(levels))
	for i, v := range levels {
		ints[i] = int(v)
	}
	return t.WithColumn(series.New(ints, series.Int, enc.Column))
}
