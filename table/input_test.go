package table

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1.5, 2.5}, series.Float, "monto"),
		series.New([]int{1, 2}, series.Int, "buro"),
	)

	tests := []struct {
		name  string
		input interface{}
		rows  int
	}{
		{"csv text", "monto,buro\n1.5,1\n2.5,2\n", 2},
		{"csv bytes", []byte("monto,buro\n1.5,1\n"), 1},
		{"single record", map[string]interface{}{"monto": 1.5, "buro": 1}, 1},
		{"record list", []map[string]interface{}{
			{"monto": 1.5, "buro": 1},
			{"monto": 2.5, "buro": nil},
		}, 2},
		{"raw records", [][]string{{"monto", "buro"}, {"1.5", "1"}}, 1},
		{"dataframe", df, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := FromValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, tbl.Len())
			assert.True(t, tbl.HasColumn("monto"))
			assert.True(t, tbl.HasColumn("buro"))
		})
	}
}

func TestFromValueNullRecord(t *testing.T) {
	tbl, err := FromValue([]map[string]interface{}{
		{"monto": 1.5, "buro": 1},
		{"monto": 2.5, "buro": nil},
	})
	require.NoError(t, err)

	labels, err := tbl.Labels("buro")
	require.NoError(t, err)
	assert.Equal(t, NullLabel, labels[1])
}

func TestFromValueUnsupported(t *testing.T) {
	for _, v := range []interface{}{42, 3.14, []int{1, 2}, nil, (*Table)(nil)} {
		_, err := FromValue(v)
		assert.True(t, errors.Is(err, ErrUnsupportedType), "value %#v", v)
	}
}

func TestFromValueBadInput(t *testing.T) {
	_, err := FromValue("")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = FromValue([]map[string]interface{}{})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = FromValue([][]string{{"only", "header"}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFromValueCopiesTable(t *testing.T) {
	src, err := FromValue("a\n1\n2\n")
	require.NoError(t, err)

	dup, err := FromValue(src)
	require.NoError(t, err)
	assert.NotSame(t, src, dup)
	assert.Equal(t, src.Records(), dup.Records())
}

func TestRequireColumns(t *testing.T) {
	tbl, err := FromValue("a,b,c\n1,2,3\n")
	require.NoError(t, err)

	proj, err := RequireColumns(tbl, "c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, proj.Names())

	_, err = RequireColumns(tbl, "a", "x", "y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Contains(t, err.Error(), "x,y")
}
