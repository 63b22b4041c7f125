// Package factory names the supported statement formats and builds their
// codecs.
package factory

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/stmtconv/internal/camtparser"
	"fjacquet/stmtconv/internal/csvparser"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/mt940parser"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
)

// Format is the closed set of statement formats. The zero value is not a
// format.
type Format int

const (
	// Line is the tag-prefixed SWIFT MT940 format.
	Line Format = iota + 1
	// Structured is the ISO 20022 CAMT.053 XML format.
	Structured
	// Tabular is the bilingual CSV export.
	Tabular
)

// Formats lists every format in declaration order.
var Formats = []Format{Line, Structured, Tabular}

var formatAliases = map[string]Format{
	"mt940":    Line,
	"mt-940":   Line,
	"swift":    Line,
	"camt053":  Structured,
	"camt.053": Structured,
	"camt":     Structured,
	"xml":      Structured,
	"csv":      Tabular,
}

var extensionFormats = map[string]Format{
	".mt940": Line,
	".940":   Line,
	".sta":   Line,
	".swi":   Line,
	".xml":   Structured,
	".csv":   Tabular,
	".txt":   Tabular,
}

func (f Format) String() string {
	switch f {
	case Line:
		return "mt940"
	case Structured:
		return "camt053"
	case Tabular:
		return "csv"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension is the file extension written for the format, without a dot.
func (f Format) Extension() string {
	switch f {
	case Line:
		return "mt940"
	case Structured:
		return "xml"
	case Tabular:
		return "csv"
	}
	return ""
}

// IsValid reports whether f is one of Formats.
func (f Format) IsValid() bool {
	return f >= Line && f <= Tabular
}

// FormatFromName resolves a case-insensitive format name or alias.
func FormatFromName(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, &parsererror.UnknownFormatError{Name: name}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	return 0, &parsererror.UnknownFormatError{Name: path}
}

// DetectFormat sniffs document content: XML holding a statement is
// Structured, text with :20: and :25: lines is Line, anything else is
// assumed Tabular.
func DetectFormat(data []byte) Format {
	switch {
	case camtparser.LooksLikeStatement(data):
		return Structured
	case mt940parser.LooksLikeStatement(data):
		return Line
	}
	return Tabular
}

// Options carries per-codec settings.
type Options struct {
	Structured camtparser.Options
	Tabular    csvparser.Options
}

// DefaultOptions returns every codec's defaults.
func DefaultOptions() Options {
	return Options{
		Structured: camtparser.DefaultOptions(),
		Tabular:    csvparser.DefaultOptions(),
	}
}

// GetCodec returns a new codec for format with the provided logger.
func GetCodec(format Format, logger logging.Logger, opts Options) (parser.Codec, error) {
	switch format {
	case Line:
		return mt940parser.NewMT940Parser(logger), nil
	case Structured:
		return camtparser.NewISO20022Parser(logger, opts.Structured), nil
	case Tabular:
		return csvparser.NewCSVParser(logger, opts.Tabular), nil
	default:
		return nil, &parsererror.UnknownFormatError{Name: format.String()}
	}
}
