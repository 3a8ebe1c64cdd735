// Package clean removes outliers and normalizes categories in raw tables.
//
// # Outliers
//
// RemoveOutliers keeps the rows whose value in a numeric column lies within
// the medcouple-adjusted boxplot fence, plus every row where the value is
// null:
//
//	cleaned, err := clean.RemoveOutliers(raw, "ingresos_anuales_mxn")
//
// FilterOutliers returns the fence and the number of dropped rows as well.
//
// # Column Name Correction
//
// The operations never prompt. A Retrier retries with a name supplied by the
// caller's Resolver whenever the column is missing:
//
//	r := clean.Retrier{
//	    MaxRetries: 3,
//	    Resolve: func(missing *table.ColumnNotFoundError) (string, error) {
//	        return askUser(missing.Column)
//	    },
//	}
//	res, err := r.FilterOutliers(raw, "ingresos")
//
// Once the attempts are used up the error is an *ExhaustedError, which
// matches table.ErrInvalidInput and wraps the last *table.ColumnNotFoundError.
//
// # Categories
//
//	cleaned, err = clean.StandardizeCategories(cleaned, "sector_industrial",
//	    map[string]string{"retail": "Retail"})
package clean
