package parsererror

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "parse error",
			err:      &ParseError{Parser: "CAMT", Field: "amount", Value: "abc", Err: errors.New("invalid decimal")},
			expected: "CAMT: failed to parse amount='abc': invalid decimal",
		},
		{
			name:     "invalid date",
			err:      InvalidDate("MT940", "value date", "991340"),
			expected: "MT940: failed to parse value date='991340': invalid date",
		},
		{
			name:     "line error with cause",
			err:      &LineError{Line: 4, Content: ":61:24", Msg: "transaction line", Err: ErrContentTooShort},
			expected: `line 4: transaction line: content too short (content: ":61:24")`,
		},
		{
			name:     "line error without cause",
			err:      &LineError{Line: 1, Content: "x", Msg: "unexpected"},
			expected: `line 1: unexpected (content: "x")`,
		},
		{
			name:     "missing field",
			err:      &MissingFieldError{Parser: "MT940", Field: ":20: statement id"},
			expected: "MT940: missing required field :20: statement id",
		},
		{
			name:     "unknown format",
			err:      &UnknownFormatError{Name: "pdf"},
			expected: "unrecognized format name 'pdf'",
		},
		{
			name:     "io error with path",
			err:      &IOError{Op: "open", Path: "in.xml", Err: io.ErrUnexpectedEOF},
			expected: "i/o error during open of 'in.xml': unexpected EOF",
		},
		{
			name:     "csv error at row",
			err:      &CSVError{Row: 3, Err: errors.New("bare quote")},
			expected: "csv error at row 3: bare quote",
		},
		{
			name:     "xml error",
			err:      &XMLError{Op: "decode", Err: errors.New("EOF")},
			expected: "xml decode error: EOF",
		},
		{
			name:     "conversion error",
			err:      &ConversionError{From: "camt053", To: "mt940", Reason: "no transactions"},
			expected: "conversion from camt053 to mt940 failed: no transactions",
		},
		{
			name:     "validation error",
			err:      &ValidationError{FilePath: "a.csv", Reason: "empty account"},
			expected: "validation failed for a.csv: empty account",
		},
		{
			name:     "invalid format error",
			err:      &InvalidFormatError{FilePath: "a.xml", ExpectedFormat: "camt053", Msg: "no statement"},
			expected: "invalid format in file 'a.xml': no statement. Expected: camt053",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(InvalidAmount("CSV", "amount", "1,2,3"), ErrInvalidAmount))
	assert.True(t, errors.Is(&MissingFieldError{Parser: "MT940", Field: "x"}, ErrMissingField))
	assert.True(t, errors.Is(&UnknownFormatError{Name: "pdf"}, ErrUnknownFormat))
	assert.True(t, errors.Is(&LineError{Err: ErrContentTooShort}, ErrContentTooShort))
	assert.True(t, errors.Is(&IOError{Op: "read", Err: io.EOF}, io.EOF))

	var lineErr *LineError
	wrapped := &ParseError{Parser: "MT940", Err: &LineError{Line: 7}}
	assert.True(t, errors.As(wrapped, &lineErr))
	assert.Equal(t, 7, lineErr.Line)
}
