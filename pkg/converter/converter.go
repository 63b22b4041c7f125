// Package converter reads, writes and converts bank statements between the
// MT940, CAMT.053 and tabular CSV formats.
package converter

import (
	"io"
	"sync"
	"time"

	"fjacquet/stmtconv/internal/conversion"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
)

type (
	Statement   = models.Statement
	Transaction = models.Transaction
	Balance     = models.Balance
	Format      = factory.Format
	Options     = factory.Options
	Logger      = logging.Logger
)

const (
	Line       = factory.Line
	Structured = factory.Structured
	Tabular    = factory.Tabular
)

// Converter holds one codec per format.
type Converter struct {
	codecs map[Format]parser.Codec
	rules  *conversion.Rules
}

// New creates a Converter whose codecs log through logger.
func New(logger Logger, opts Options) (*Converter, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	c := &Converter{
		codecs: make(map[Format]parser.Codec, len(factory.Formats)),
		rules:  conversion.NewRules(logger, time.Now),
	}
	for _, f := range factory.Formats {
		codec, err := factory.GetCodec(f, logger, opts)
		if err != nil {
			return nil, err
		}
		c.codecs[f] = codec
	}
	return c, nil
}

// DefaultOptions returns the codec defaults.
func DefaultOptions() Options {
	return factory.DefaultOptions()
}

func (c *Converter) codec(f Format) (parser.Codec, error) {
	codec, ok := c.codecs[f]
	if !ok {
		return nil, &parsererror.UnknownFormatError{Name: f.String()}
	}
	return codec, nil
}

// Parse reads one whole document of the given format.
func (c *Converter) Parse(r io.Reader, format Format) (*Statement, error) {
	codec, err := c.codec(format)
	if err != nil {
		return nil, err
	}
	return codec.Parse(r)
}

// Serialize writes stmt to w in the given format.
func (c *Converter) Serialize(stmt *Statement, format Format, w io.Writer) error {
	codec, err := c.codec(format)
	if err != nil {
		return err
	}
	if stmt == nil {
		return &parsererror.ConversionError{To: format.String(), Reason: "no statement to serialize"}
	}
	return codec.Write(w, stmt)
}

// Convert parses r as from, applies the conversion rules between the two
// formats and serializes the result to w as to.
func (c *Converter) Convert(r io.Reader, from Format, w io.Writer, to Format) error {
	if _, err := c.codec(to); err != nil {
		return err
	}
	stmt, err := c.Parse(r, from)
	if err != nil {
		return err
	}
	return c.Serialize(c.rules.Apply(stmt, from, to), to, w)
}

var defaultConverter = sync.OnceValues(func() (*Converter, error) {
	return New(nil, DefaultOptions())
})

// FormatFromName resolves a format name or alias such as "swift" or "camt.053".
func FormatFromName(name string) (Format, error) {
	return factory.FormatFromName(name)
}

// Parse reads a document with the default codec options.
func Parse(r io.Reader, format Format) (*Statement, error) {
	c, err := defaultConverter()
	if err != nil {
		return nil, err
	}
	return c.Parse(r, format)
}

// Serialize writes a statement with the default codec options.
func Serialize(stmt *Statement, format Format, w io.Writer) error {
	c, err := defaultConverter()
	if err != nil {
		return err
	}
	return c.Serialize(stmt, format, w)
}

// Convert converts a document with the default codec options.
func Convert(r io.Reader, from Format, w io.Writer, to Format) error {
	c, err := defaultConverter()
	if err != nil {
		return err
	}
	return c.Convert(r, from, w, to)
}
