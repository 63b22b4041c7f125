package parser

import (
	"io"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/parsererror"
)

// BaseParser carries what every codec shares. Embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	name   string
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to an info-level
// text logger.
func NewBaseParser(name string, logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{
		name:   name,
		logger: logger.WithField(logging.FieldFormat, name),
	}
}

func (b *BaseParser) Name() string {
	return b.name
}

func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger.WithField(logging.FieldFormat, b.name)
	}
}

func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// ReadAll buffers the whole source; documents are never parsed incrementally.
func (b *BaseParser) ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &parsererror.IOError{Op: "read", Err: err}
	}
	return data, nil
}

// LogParsed emits the per-document summary line.
func (b *BaseParser) LogParsed(statementID string, count int) {
	b.logger.Info("Parsed statement",
		logging.F(logging.FieldStatementID, statementID),
		logging.F(logging.FieldCount, count))
}

// LogWritten emits the per-document summary line for serialization.
func (b *BaseParser) LogWritten(statementID string, count int) {
	b.logger.Info("Wrote statement",
		logging.F(logging.FieldStatementID, statementID),
		logging.F(logging.FieldCount, count))
}
