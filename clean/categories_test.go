package clean

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gocreditprep/table"
)

func TestStandardizeCategories(t *testing.T) {
	tbl, err := table.FromValue("id,sector\n1,retail\n2,Retail\n3,\n4,Manufactura\n")
	require.NoError(t, err)

	out, err := StandardizeCategories(tbl, "sector", map[string]string{"retail": "Retail"})
	require.NoError(t, err)

	sectors, err := out.Labels("sector")
	require.NoError(t, err)
	assert.Equal(t, []string{"Retail", "Retail", table.NullLabel, "Manufactura"}, sectors)
	assert.Equal(t, tbl.Names(), out.Names())

	before, err := tbl.Labels("sector")
	require.NoError(t, err)
	assert.Equal(t, "retail", before[0])
}

func TestStandardizeCategoriesErrors(t *testing.T) {
	tbl, err := table.FromValue("id,sector\n1,retail\n")
	require.NoError(t, err)

	_, err = StandardizeCategories(tbl, "sector", nil)
	assert.True(t, errors.Is(err, table.ErrInvalidInput))

	_, err = StandardizeCategories(tbl, "id", map[string]string{"1": "one"})
	assert.True(t, errors.Is(err, table.ErrInvalidInput))

	_, err = StandardizeCategories(tbl, "industry", map[string]string{"retail": "Retail"})
	assert.True(t, errors.Is(err, table.ErrColumnNotFound))
}

func TestRetrierStandardizeCategories(t *testing.T) {
	tbl, err := table.FromValue("id,sector_industrial\n1,retail\n")
	require.NoError(t, err)

	r := Retrier{Resolve: func(*table.ColumnNotFoundError) (string, error) {
		return "sector_industrial", nil
	}}
	out, used, err := r.StandardizeCategories(tbl, "sector", map[string]string{"retail": "Retail"})
	require.NoError(t, err)
	assert.Equal(t, "sector_industrial", used)

	sectors, err := out.Labels("sector_industrial")
	require.NoError(t, err)
	assert.Equal(t, []string{"Retail"}, sectors)
}
