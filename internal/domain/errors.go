package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates the input file could not be opened or read as CSV.
	ErrIO = errors.New("reading input")

	// ErrParse indicates a timestamp in the index column could not be parsed.
	ErrParse = errors.New("parsing timestamp")

	// ErrUnknownColumn indicates a requested column is not present in the table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNotNumeric indicates a non-null cell could not be read as a number
	// where a numeric value was required.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrUnknownMetric indicates a metric name that has no definition.
	ErrUnknownMetric = errors.New("unknown metric")
)

// ParseError describes a timestamp that could not be parsed.
type ParseError struct {
	Line   int
	Header string
	Value  string
}

func (e *ParseError) Error() string {
	header := e.Header
	if header == "" {
		header = "index"
	}
	return fmt.Sprintf("line %d: column %q: cannot parse %q as a date", e.Line, header, e.Value)
}

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
