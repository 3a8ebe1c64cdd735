package clean

import (
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/table"
)

// StandardizeCategories rewrites the values of a categorical column through
// replacements, e.g. {"retail": "Retail"}. Values without a replacement and
// nulls are kept as they are.
func StandardizeCategories(t *table.Table, column string, replacements map[string]string) (*table.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if len(replacements) == 0 {
		return nil, errors.Wrap(table.ErrInvalidInput, "no category replacements given")
	}
	if col.Type() != series.String {
		return nil, errors.Wrapf(table.ErrInvalidInput, "column %q is not categorical (%s)", column, col.Type())
	}

	values := make([]string, col.Len())
	for i := range values {
		e := col.Elem(i)
		if table.IsNull(e) {
			values[i] = table.NullLabel
			continue
		}
		v := e.String()
		if r, ok := replacements[v]; ok {
			v = r
		}
		values[i] = v
	}
	return t.WithColumn(series.New(values, series.String, column))
}
