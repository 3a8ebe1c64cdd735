package stats

import (
	"fmt"
	"math"
	"strings"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// DescribePercentiles are the percentiles reported by Describe.
var DescribePercentiles = []float64{25, 50, 75}

// Description is a pandas-style column summary together with the
// skew-adjusted outlier fence of the same values.
type Description struct {
	*mstats.Description
	Nulls   int
	Summary Summary
	Fence   Fence
}

// Describe summarizes values, ignoring NaN. Percentiles use the same
// interpolation as Quartiles.
func Describe(values []float64) (*Description, error) {
	sorted := SortedValues(values)
	if len(sorted) == 0 {
		return nil, errors.New("describe: no non-null values")
	}

	percentiles := append([]float64(nil), DescribePercentiles...)
	d, err := mstats.DescribePercentileFunc(mstats.Float64Data(sorted), false, &percentiles, interpolatedPercentile)
	if err != nil {
		return nil, errors.Wrap(err, "describe")
	}

	summary := Summarize(sorted)
	return &Description{
		Description: d,
		Nulls:       len(values) - len(sorted),
		Summary:     summary,
		Fence:       AdjustedFence(summary),
	}, nil
}

// interpolatedPercentile adapts Quantile to the (0, 100] percent scale.
func interpolatedPercentile(data mstats.Float64Data, percent float64) (float64, error) {
	if data.Len() == 0 {
		return math.NaN(), mstats.ErrEmptyInput
	}
	if percent <= 0 || percent > 100 {
		return math.NaN(), mstats.ErrBounds
	}
	sorted := SortedValues(data)
	return Quantile(sorted, percent/100), nil
}

// String renders the description with the given number of decimals.
func (d *Description) String(decimals int) string {
	var b strings.Builder
	b.WriteString(d.Description.String(decimals))
	fmt.Fprintf(&b, "\nnulls\t%d", d.Nulls)
	fmt.Fprintf(&b, "\niqr\t%.*f", decimals, d.Summary.IQR)
	fmt.Fprintf(&b, "\nmc\t%.*f", decimals, d.Summary.Medcouple)
	fmt.Fprintf(&b, "\nlower\t%.*f", decimals, d.Fence.Lower)
	fmt.Fprintf(&b, "\nupper\t%.*f", decimals, d.Fence.Upper)
	return b.String()
}
