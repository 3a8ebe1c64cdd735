// Package features derives, encodes and selects model features.
//
// Ratios are computed from existing numeric columns:
//
//	t, err := features.DeriveRatios(t,
//	    features.Ratio{Name: "ratio_deuda_ingresos",
//	        Numerators: []string{"deuda_total_mxn"}, Denominator: "ingresos_anuales_mxn"},
//	)
//
// Ordered categories are mapped to integers:
//
//	zero := 0
//	t, err = features.EncodeOrdinal(t, features.OrdinalEncoding{
//	    Column:    "calificacion_buro",
//	    Levels:    map[string]int{"A": 1, "B": 2, "C": 3, "D": 4},
//	    NullLevel: &zero,
//	})
//
// SelectFeatures keeps only the columns a model is trained on.
package features
