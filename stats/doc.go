// Package stats provides the robust statistics behind outlier detection.
//
// Quantiles use linear interpolation between order statistics, the rule
// used by pandas' describe(). The medcouple measures skewness without being
// pulled by the outliers it is meant to find, and drives the asymmetric
// boxplot fence used to filter a numeric column.
//
// # Quartiles
//
//	q1, median, q3 := stats.Quartiles(values) // NaN values are ignored
//
//	sorted := stats.SortedValues(values)
//	p90 := stats.Quantile(sorted, 0.9)
//
// # Medcouple
//
//	mc := stats.Medcouple(values)
//	// mc > 0: right-skewed, mc < 0: left-skewed, mc == 0: symmetric
//
// # Outlier Fences
//
//	summary := stats.Summarize(values)
//	fence := stats.AdjustedFence(summary)
//	if !fence.Contains(v) {
//	    // v is an outlier
//	}
//
// With a zero medcouple AdjustedFence equals TukeyFence.
//
// # Column Description
//
//	d, err := stats.Describe(values)
//	fmt.Println(d.String(2))
//
// # References
//
//   - Brys, G., Hubert, M., & Struyf, A. (2004). A Robust Measure of Skewness.
//     Journal of Computational and Graphical Statistics, 13(4), 996-1017.
//   - Hubert, M., & Vandervieren, E. (2008). An adjusted boxplot for skewed
//     distributions. Computational Statistics & Data Analysis, 52(12), 5186-5201.
package stats
