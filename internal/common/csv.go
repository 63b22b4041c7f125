// Package common provides the CSV plumbing shared by the tabular codec and
// the file helpers.
package common

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

const byteOrderMark = "\ufeff"

// HeaderAliases maps lowercased header spellings to the canonical column
// name carried by the row struct's csv tag.
type HeaderAliases map[string]string

// Canonical returns the canonical name for a raw header cell. Unknown headers
// are returned trimmed and otherwise untouched.
func (a HeaderAliases) Canonical(raw string) string {
	name := strings.TrimSpace(strings.TrimPrefix(raw, byteOrderMark))
	if canonical, ok := a[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// headerReader rewrites the first record through HeaderAliases so gocsv only
// ever sees canonical column names.
type headerReader struct {
	r       *csv.Reader
	aliases HeaderAliases
	seen    bool
}

func (h *headerReader) Read() ([]string, error) {
	record, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if !h.seen {
		h.seen = true
		for i, cell := range record {
			record[i] = h.aliases.Canonical(cell)
		}
	}
	return record, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := h.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// NewReader returns a lenient csv.Reader: ragged rows and stray quotes are
// accepted, quoted cells may span several lines.
func NewReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// ReadRows decodes every data row of r into TRow. The header row is matched
// through aliases. An empty input yields no rows.
func ReadRows[TRow any](r io.Reader, delimiter rune, aliases HeaderAliases, logger logging.Logger) ([]TRow, error) {
	var rows []TRow
	err := gocsv.UnmarshalCSV(&headerReader{r: NewReader(r, delimiter), aliases: aliases}, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		logger.Debug("CSV input is empty")
		return nil, nil
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &parsererror.CSVError{Row: parseErr.Line, Err: err}
		}
		return nil, &parsererror.CSVError{Err: err}
	}

	logger.Debug("Read CSV rows", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteRows marshals rows with a header row taken from TRow's csv tags.
func WriteRows[TRow any](w io.Writer, rows []TRow, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return &parsererror.CSVError{Err: err}
	}
	return nil
}

// ParseDelimiter returns the first rune of s, or DefaultDelimiter when s is
// empty. "\t" and "tab" select a tab.
func ParseDelimiter(s string) rune {
	switch strings.ToLower(s) {
	case "":
		return DefaultDelimiter
	case `\t`, "tab":
		return '\t'
	}
	return []rune(s)[0]
}
