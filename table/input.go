package table

import (
	"bytes"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
)

// FromValue converts one of the supported input shapes into a table:
//
//	string, []byte              CSV text with a header row
//	map[string]interface{}      a single record
//	[]map[string]interface{}    a list of records
//	[][]string                  raw records, first row is the header
//	dataframe.DataFrame         an existing DataFrame (copied)
//	*Table                      an existing table (copied)
//
// Any other value fails with ErrUnsupportedType.
func FromValue(v interface{}) (*Table, error) {
	switch in := v.(type) {
	case string:
		return fromCSVText(in)
	case []byte:
		return fromCSVBytes(in)
	case map[string]interface{}:
		return fromRecord(in)
	case []map[string]interface{}:
		return fromRecordList(in)
	case [][]string:
		return fromRawRecords(in)
	case dataframe.DataFrame:
		return New(in.Copy())
	case *Table:
		if in == nil {
			return nil, errors.Wrap(ErrUnsupportedType, "nil table")
		}
		return in.Copy(), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedType, "cannot build a table from %T", v)
}

func fromCSVText(text string) (*Table, error) {
	t, err := LoadCSVFromReader(strings.NewReader(text), nil)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "parse csv: %v", err)
	}
	return t, nil
}

func fromCSVBytes(b []byte) (*Table, error) {
	t, err := LoadCSVFromReader(bytes.NewReader(b), nil)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "parse csv: %v", err)
	}
	return t, nil
}

func fromRecord(record map[string]interface{}) (*Table, error) {
	return fromRecordList([]map[string]interface{}{record})
}

func fromRecordList(records []map[string]interface{}) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no records")
	}
	opts := DefaultCSVOptions()
	return New(dataframe.LoadMaps(records,
		dataframe.DetectTypes(true),
		dataframe.NaNValues(opts.NullValues),
	))
}

func fromRawRecords(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, errors.Wrap(ErrInvalidInput, "records need a header and at least one row")
	}
	opts := DefaultCSVOptions()
	return New(dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(opts.NullValues),
	))
}

// RequireColumns projects t onto names. Every missing name is reported in
// a single ColumnNotFound error.
func RequireColumns(t *Table, names ...string) (*Table, error) {
	var missing []string
	for _, name := range names {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(columnNotFound(strings.Join(missing, ",")),
			"available columns: %s", strings.Join(t.Names(), ","))
	}
	return t.Select(names...)
}
