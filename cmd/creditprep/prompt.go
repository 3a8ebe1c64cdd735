package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/gocreditprep/clean"
	"github.com/sartorproj/gocreditprep/table"
)

// promptResolver asks on out for the correct name of a missing column and
// reads the answer from in, one line per question.
func promptResolver(in io.Reader, out io.Writer) clean.Resolver {
	scanner := bufio.NewScanner(in)
	return func(missing *table.ColumnNotFoundError) (string, error) {
		fmt.Fprintf(out, "Column %q does not exist. Enter the correct column name: ", missing.Column)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", errors.Wrap(err, "read column name")
			}
			return "", errors.New("no column name given")
		}
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			return "", errors.New("no column name given")
		}
		return name, nil
	}
}
