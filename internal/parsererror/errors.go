// Package parsererror defines the typed errors produced by the extraction pipeline.
package parsererror

import "fmt"

// RowError reports a table row that could not be parsed into a transaction.
// Rows failing this way are skipped and logged; they never abort the batch.
type RowError struct {
	Field  string // the cell or derived value that failed
	Value  string // the offending raw content
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row skipped: %s='%s': %s", e.Field, e.Value, e.Reason)
}

// ParseError represents a failure while parsing an input document.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
