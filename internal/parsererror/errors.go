// Package parsererror defines the error kinds returned by the statement codecs.
package parsererror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidIndicator = errors.New("invalid debit/credit indicator")
	ErrContentTooShort  = errors.New("content too short")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownFormat    = errors.New("unrecognized format")
)

// ParseError reports a value that could not be decoded. Err carries the kind
// (ErrInvalidDate, ErrInvalidAmount, ...) or the underlying library error.
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

// InvalidDate builds a ParseError of the invalid date kind.
func InvalidDate(parser, field, value string) *ParseError {
	return &ParseError{Parser: parser, Field: field, Value: value, Err: ErrInvalidDate}
}

// InvalidAmount builds a ParseError of the invalid amount kind.
func InvalidAmount(parser, field, value string) *ParseError {
	return &ParseError{Parser: parser, Field: field, Value: value, Err: ErrInvalidAmount}
}

// LineError is a positional failure in the line format. Line is 1-based and
// Content holds the raw offending line.
type LineError struct {
	Line    int
	Content string
	Msg     string
	Err     error
}

func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v (content: %q)", e.Line, e.Msg, e.Err, e.Content)
	}
	return fmt.Sprintf("line %d: %s (content: %q)", e.Line, e.Msg, e.Content)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required field absent from the source document.
type MissingFieldError struct {
	Parser string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %s", e.Parser, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// UnknownFormatError reports a format name that maps to no codec.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unrecognized format name '%s'", e.Name)
}

func (e *UnknownFormatError) Unwrap() error {
	return ErrUnknownFormat
}

// IOError wraps a failure reading or writing a source or sink.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("i/o error during %s of '%s': %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("i/o error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CSVError wraps a failure of the tabular reader or writer. Row is 0 when
// the failure is not tied to a data row.
type CSVError struct {
	Row int
	Err error
}

func (e *CSVError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("csv error at row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("csv error: %v", e.Err)
}

func (e *CSVError) Unwrap() error {
	return e.Err
}

// XMLError wraps a failure decoding or encoding the structured format.
type XMLError struct {
	Op  string
	Err error
}

func (e *XMLError) Error() string {
	return fmt.Sprintf("xml %s error: %v", e.Op, e.Err)
}

func (e *XMLError) Unwrap() error {
	return e.Err
}

// ConversionError reports a statement that cannot be carried from one format to another.
type ConversionError struct {
	From   string
	To     string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversion from %s to %s failed: %s: %v", e.From, e.To, e.Reason, e.Err)
	}
	return fmt.Sprintf("conversion from %s to %s failed: %s", e.From, e.To, e.Reason)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ValidationError reports a statement that breaks a model invariant.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError reports input that does not look like the declared format.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
