// Package parsererror defines the typed errors used across the
// sales-csv parsing, validation and catalog layers.
package parsererror

import "fmt"

// ParseError represents a failure to parse a specific field of a record.
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

// ValidationError represents a validation failure on an input file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input file does not
// conform to the expected pipe-delimited sales format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// FetchError represents a failure talking to the remote product catalog.
// Callers are expected to recover from it by proceeding with an empty
// catalog rather than aborting the run.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("catalog fetch failed for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// EncodingError represents an input file that could not be decoded with
// any of the supported encodings. This is fatal at the orchestration
// layer.
type EncodingError struct {
	FilePath string
	Tried    []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unable to decode file '%s' with supported encodings %v",
		e.FilePath, e.Tried)
}
