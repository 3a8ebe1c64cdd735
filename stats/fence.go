package stats

import (
	"fmt"
	"math"
)

// Summary holds the statistics an outlier fence is built from.
type Summary struct {
	Count     int     // Non-null values
	Q1        float64 // First quartile
	Median    float64
	Q3        float64 // Third quartile
	IQR       float64 // Q3 - Q1
	Medcouple float64
}

// Summarize computes the quartiles and medcouple of values, ignoring NaN.
func Summarize(values []float64) Summary {
	sorted := SortedValues(values)
	q1, q3 := Quantile(sorted, 0.25), Quantile(sorted, 0.75)
	return Summary{
		Count:     len(sorted),
		Q1:        q1,
		Median:    Median(sorted),
		Q3:        q3,
		IQR:       q3 - q1,
		Medcouple: Medcouple(sorted),
	}
}

// Fence is the inclusive range of values accepted as non-outliers.
type Fence struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies within the fence, bounds included.
func (f Fence) Contains(v float64) bool {
	return v >= f.Lower && v <= f.Upper
}

func (f Fence) String() string {
	return fmt.Sprintf("[%g, %g]", f.Lower, f.Upper)
}

// TukeyFence returns [Q1 - 1.5 IQR, Q3 + 1.5 IQR].
func TukeyFence(s Summary) Fence {
	return Fence{
		Lower: s.Q1 - 1.5*s.IQR,
		Upper: s.Q3 + 1.5*s.IQR,
	}
}

// AdjustedFence returns the skew-adjusted boxplot fence of Hubert and
// Vandervieren (2008). For MC > 0 the fence is
//
//	[Q1 - 1.5 e^(-3.5 MC) IQR, Q3 + 1.5 e^(4 MC) IQR]
//
// and for MC < 0
//
//	[Q1 - 1.5 e^(-4 MC) IQR, Q3 + 1.5 e^(3.5 MC) IQR].
//
// A zero (or undefined) medcouple yields the Tukey fence.
func AdjustedFence(s Summary) Fence {
	mc := s.Medcouple
	switch {
	case mc > 0:
		return Fence{
			Lower: s.Q1 - 1.5*math.Exp(-3.5*mc)*s.IQR,
			Upper: s.Q3 + 1.5*math.Exp(4*mc)*s.IQR,
		}
	case mc < 0:
		return Fence{
			Lower: s.Q1 - 1.5*math.Exp(-4*mc)*s.IQR,
			Upper: s.Q3 + 1.5*math.Exp(3.5*mc)*s.IQR,
		}
	}
	return TukeyFence(s)
}
