// Package table provides the in-memory table the preparation stages operate on.
//
// A Table is an ordered collection of rows sharing one set of named columns,
// backed by a gota DataFrame. Cells hold integers, floats, strings or null.
// Every operation returns a new Table; the receiver is never modified, so a
// failed operation leaves its input exactly as it was.
//
// # Loading from CSV
//
//	t, err := table.LoadCSV("data/raw/credit.csv", nil)
//
//	opts := table.DefaultCSVOptions()
//	opts.Delimiter = ';'
//	t, err := table.LoadCSVFromReader(reader, opts)
//
// Empty cells and the tokens NA, NaN, null and <nil> are read as null.
//
// # Column Access
//
//	income, err := t.Floats("ingresos_anuales_mxn") // NaN for null cells
//	sector, err := t.Labels("sector_industrial")     // NullLabel for null cells
//
// A missing column yields a *ColumnNotFoundError, which matches
// ErrColumnNotFound under errors.Is.
//
// # Row and Column Operations
//
//	kept, err := t.Filter(func(row int) bool { return income[row] > 0 })
//	head, err := t.Subset([]int{0, 1, 2})
//	both, err := head.Append(kept)
//	proj, err := t.Select("monto_solicitado_mxn", "default_12m")
//
// # Other Inputs
//
// FromValue accepts CSV text, records and DataFrames and rejects any other
// value with ErrUnsupportedType:
//
//	t, err := table.FromValue([]map[string]interface{}{
//	    {"monto_solicitado_mxn": 250000.0, "calificacion_buro": 2},
//	})
//	t, err = table.RequireColumns(t, "monto_solicitado_mxn", "calificacion_buro")
package table
