package table

import (
	"bufio"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// CSVOptions holds options for CSV loading and saving.
type CSVOptions struct {
	Delimiter   rune                   // Field delimiter (default: ',')
	HasHeader   bool                   // Whether the first row names the columns (default: true)
	NullValues  []string               // Cells read as null
	ColumnTypes map[string]series.Type // Forced column types; others are detected
	LazyQuotes  bool                   // Accept bare quotes inside fields
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter:  ',',
		HasHeader:  true,
		NullValues: []string{"", "NA", "NaN", "null", "<nil>"},
	}
}

func (o *CSVOptions) loadOptions() []dataframe.LoadOption {
	opts := []dataframe.LoadOption{
		dataframe.HasHeader(o.HasHeader),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(o.NullValues),
		dataframe.WithDelimiter(o.Delimiter),
		dataframe.WithLazyQuotes(o.LazyQuotes),
	}
	if len(o.ColumnTypes) > 0 {
		opts = append(opts, dataframe.WithTypes(o.ColumnTypes))
	}
	return opts
}

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open csv")
	}
	defer file.Close()

	t, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return t, nil
}

// LoadCSVFromReader loads a table from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	df := dataframe.ReadCSV(r, opts.loadOptions()...)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "read csv")
	}
	if df.Ncol() == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no columns found in CSV")
	}
	return New(df)
}

// SaveCSV writes a table to a CSV file, creating or truncating it.
func SaveCSV(t *Table, filename string, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}

	if err := WriteCSV(t, file, opts); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", filename)
	}
	return file.Close()
}

// WriteCSV writes a table as CSV to w.
func WriteCSV(t *Table, w io.Writer, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	writer := bufio.NewWriter(w)
	if err := t.df.WriteCSV(writer, dataframe.WriteHeader(opts.HasHeader)); err != nil {
		return err
	}
	return writer.Flush()
}
