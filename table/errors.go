package table

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrColumnNotFound is returned when a requested column is absent from a table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidInput is returned for arguments the operation cannot work with,
	// such as an empty mapping or a non-binary target column.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned when a value cannot be turned into a table.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ColumnNotFoundError reports a missing column together with the number of
// attempts already made to resolve it.
type ColumnNotFoundError struct {
	Column   string
	Attempts int
}

func (e *ColumnNotFoundError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("column %q not found after %d attempt(s)", e.Column, e.Attempts)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

// Is makes errors.Is(err, ErrColumnNotFound) hold for every ColumnNotFoundError.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

func columnNotFound(name string) error {
	return &ColumnNotFoundError{Column: name}
}
