// Package parser defines the contracts every statement codec implements and
// the BaseParser they embed.
package parser

import (
	"io"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
)

// Parser reads one whole document and returns its canonical statement.
// Implementations return the typed errors of package parsererror and never a
// partial statement.
type Parser interface {
	Parse(r io.Reader) (*models.Statement, error)
}

// Writer renders a statement into its format.
type Writer interface {
	Write(w io.Writer, stmt *models.Statement) error
}

// Codec is a format that can be both read and written.
type Codec interface {
	Parser
	Writer
	// Name is the short label used in error messages and logs.
	Name() string
}

// LoggerConfigurable is implemented by codecs whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FormatValidator is implemented by codecs that can cheaply tell whether a
// document looks like their format before parsing it.
type FormatValidator interface {
	ValidateFormat(r io.Reader) (bool, error)
}
