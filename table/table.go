// Package table provides the in-memory table the preparation stages operate on.
package table

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// NullLabel is the label Labels reports for a null cell.
const NullLabel = "NaN"

// Table is an ordered set of rows sharing one set of named columns.
// Operations return new tables and never modify the receiver.
type Table struct {
	df dataframe.DataFrame
}

// New wraps a gota DataFrame. A DataFrame carrying an error is rejected.
func New(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "build table")
	}
	return &Table{df: df}, nil
}

// FromSeries builds a table from columns of equal length.
func FromSeries(columns ...series.Series) (*Table, error) {
	return New(dataframe.New(columns...))
}

// DataFrame returns a copy of the underlying DataFrame.
func (t *Table) DataFrame() dataframe.DataFrame {
	return t.df.Copy()
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return t.df.Names()
}

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, columnNotFound(name)
	}
	return t.df.Col(name).Copy(), nil
}

// Floats extracts a numeric column. Null cells are returned as NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	switch col.Type() {
	case series.Int, series.Float, series.Bool:
		return col.Float(), nil
	}
	return nil, errors.Wrapf(ErrInvalidInput, "column %q is not numeric (%s)", name, col.Type())
}

// Labels extracts a column as categorical labels, one per row.
// Null cells are reported as NullLabel.
func (t *Table) Labels(name string) ([]string, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	labels := make([]string, col.Len())
	for i := range labels {
		e := col.Elem(i)
		if IsNull(e) {
			labels[i] = NullLabel
			continue
		}
		labels[i] = e.String()
	}
	return labels, nil
}

// Subset returns the rows at the given positions, in that order.
func (t *Table) Subset(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.Len() {
			return nil, errors.Wrapf(ErrInvalidInput, "row %d out of range [0,%d)", r, t.Len())
		}
	}
	if rows == nil {
		rows = []int{}
	}
	return New(t.df.Subset(rows))
}

// Filter returns the rows for which keep returns true, preserving order.
func (t *Table) Filter(keep func(row int) bool) (*Table, error) {
	rows := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return t.Subset(rows)
}

// Append returns the rows of t followed by the rows of other.
// Both tables must have the same column names.
func (t *Table) Append(other *Table) (*Table, error) {
	if len(t.Names()) != len(other.Names()) {
		return nil, errors.Wrap(ErrInvalidInput, "append: column sets differ")
	}
	for _, name := range t.Names() {
		if !other.HasColumn(name) {
			return nil, errors.Wrapf(ErrInvalidInput, "append: column %q missing from other table", name)
		}
	}
	return New(t.df.RBind(other.df))
}

// Select projects the table onto the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, columnNotFound(name)
		}
	}
	return New(t.df.Select(names))
}

// WithColumn adds s as a new column, or replaces the column with the same name.
func (t *Table) WithColumn(s series.Series) (*Table, error) {
	if s.Err != nil {
		return nil, errors.Wrapf(s.Err, "column %q", s.Name)
	}
	if s.Len() != t.Len() {
		return nil, errors.Wrapf(ErrInvalidInput, "column %q has %d rows, table has %d", s.Name, s.Len(), t.Len())
	}
	return New(t.df.Copy().Mutate(s))
}

// MoveToEnd returns a table whose last column is name.
func (t *Table) MoveToEnd(name string) (*Table, error) {
	if !t.HasColumn(name) {
		return nil, columnNotFound(name)
	}
	names := make([]string, 0, len(t.Names()))
	for _, n := range t.Names() {
		if n != name {
			names = append(names, n)
		}
	}
	return t.Select(append(names, name)...)
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return &Table{df: t.df.Copy()}
}

// Records returns the header followed by every row as strings.
func (t *Table) Records() [][]string {
	return t.df.Records()
}

// IsNull reports whether a cell holds no value.
func IsNull(e series.Element) bool {
	if e.IsNA() {
		return true
	}
	return e.Type() == series.Float && math.IsNaN(e.Float())
}
