package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4, 5, 100, math.NaN()})

	assert.Equal(t, 6, s.Count)
	assert.InDelta(t, 2.25, s.Q1, 1e-12)
	assert.InDelta(t, 3.5, s.Median, 1e-12)
	assert.InDelta(t, 4.75, s.Q3, 1e-12)
	assert.InDelta(t, 2.5, s.IQR, 1e-12)
	assert.InDelta(t, 0, s.Medcouple, 1e-12)
}

func TestAdjustedFenceZeroMedcoupleIsTukey(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4, 5, 100})
	require.Zero(t, s.Medcouple)

	fence := AdjustedFence(s)
	assert.Equal(t, TukeyFence(s), fence)
	assert.InDelta(t, -1.5, fence.Lower, 1e-12)
	assert.InDelta(t, 8.5, fence.Upper, 1e-12)
	assert.True(t, fence.Contains(5))
	assert.False(t, fence.Contains(100))
}

func TestAdjustedFenceSkewed(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lower  func(s Summary) float64
		upper  func(s Summary) float64
	}{
		{
			name:   "positive medcouple",
			values: []float64{1, 2, 3, 10},
			lower:  func(s Summary) float64 { return s.Q1 - 1.5*math.Exp(-3.5*s.Medcouple)*s.IQR },
			upper:  func(s Summary) float64 { return s.Q3 + 1.5*math.Exp(4*s.Medcouple)*s.IQR },
		},
		{
			name:   "negative medcouple",
			values: []float64{-10, -3, -2, -1},
			lower:  func(s Summary) float64 { return s.Q1 - 1.5*math.Exp(-4*s.Medcouple)*s.IQR },
			upper:  func(s Summary) float64 { return s.Q3 + 1.5*math.Exp(3.5*s.Medcouple)*s.IQR },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.values)
			fence := AdjustedFence(s)
			assert.InDelta(t, tt.lower(s), fence.Lower, 1e-12)
			assert.InDelta(t, tt.upper(s), fence.Upper, 1e-12)
		})
	}
}

func TestAdjustedFenceRightSkewWidensUpper(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 10})
	require.Greater(t, s.Medcouple, 0.0)

	adjusted := AdjustedFence(s)
	tukey := TukeyFence(s)
	assert.Greater(t, adjusted.Upper, tukey.Upper)
	assert.Greater(t, adjusted.Lower, tukey.Lower)

	// Q1=1.75, Q3=4.75, IQR=3, MC=1/3
	assert.InDelta(t, 1.75-4.5*math.Exp(-3.5/3), adjusted.Lower, 1e-12)
	assert.InDelta(t, 4.75+4.5*math.Exp(4.0/3), adjusted.Upper, 1e-12)
}

func TestFenceContainsBounds(t *testing.T) {
	f := Fence{Lower: -1, Upper: 1}

	assert.True(t, f.Contains(-1))
	assert.True(t, f.Contains(1))
	assert.False(t, f.Contains(math.NaN()))
	assert.Equal(t, "[-1, 1]", f.String())
}

func TestDescribe(t *testing.T) {
	d, err := Describe([]float64{1, 2, 3, 4, 5, 100, math.NaN()})
	require.NoError(t, err)

	assert.Equal(t, 6, d.Count)
	assert.Equal(t, 1, d.Nulls)
	assert.InDelta(t, 115.0/6, d.Mean, 1e-12)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 100.0, d.Max)

	require.Len(t, d.DescriptionPercentiles, 3)
	assert.InDelta(t, 2.25, d.DescriptionPercentiles[0].Value, 1e-12)
	assert.InDelta(t, 3.5, d.DescriptionPercentiles[1].Value, 1e-12)
	assert.InDelta(t, 4.75, d.DescriptionPercentiles[2].Value, 1e-12)

	assert.Equal(t, AdjustedFence(d.Summary), d.Fence)
	out := d.String(2)
	assert.Contains(t, out, "count\t6")
	assert.Contains(t, out, "upper\t8.50")
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe([]float64{math.NaN()})
	assert.Error(t, err)
}
