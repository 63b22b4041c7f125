// Package camtparser reads and writes ISO 20022 bank-to-customer statements
// (CAMT.053).
package camtparser

import (
	"bytes"
	"encoding/xml"
	"io"
	"time"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
	"fjacquet/stmtconv/internal/xmlutils"
)

const (
	parserName = "CAMT"

	// DefaultNamespace is written on the Document element.
	DefaultNamespace = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"
)

// Options tune serialization.
type Options struct {
	Indent    bool
	Namespace string
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// DefaultOptions returns indented output in the camt.053.001.02 namespace.
func DefaultOptions() Options {
	return Options{Indent: true, Namespace: DefaultNamespace, Now: time.Now}
}

// ISO20022Parser is the structured-format codec.
type ISO20022Parser struct {
	parser.BaseParser
	opts Options
}

// NewISO20022Parser creates the codec. A nil logger selects the default logger.
func NewISO20022Parser(logger logging.Logger, opts Options) *ISO20022Parser {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ISO20022Parser{
		BaseParser: parser.NewBaseParser(parserName, logger),
		opts:       opts,
	}
}

// Parse decodes one document and projects its statement.
func (p *ISO20022Parser) Parse(r io.Reader) (*models.Statement, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := xmlutils.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, &parsererror.XMLError{Op: "decode", Err: err}
	}

	stmts := doc.BkToCstmrStmt.Stmt
	if len(stmts) == 0 {
		return nil, &parsererror.MissingFieldError{Parser: parserName, Field: "BkToCstmrStmt/Stmt"}
	}
	if len(stmts) > 1 {
		p.GetLogger().Warn("Document holds several statements, reading the first",
			logging.F(logging.FieldCount, len(stmts)))
	}

	stmt, ignored, err := projectStatement(&stmts[0])
	if err != nil {
		return nil, err
	}
	for _, derr := range ignored {
		p.GetLogger().Warn("Ignoring unreadable statement date", logging.F(logging.FieldReason, derr.Error()))
	}

	p.LogParsed(stmt.StatementID, len(stmt.Transactions))
	return stmt, nil
}

// Write renders stmt behind an XML declaration.
func (p *ISO20022Parser) Write(w io.Writer, stmt *models.Statement) error {
	if stmt.StatementID == "" {
		return &parsererror.MissingFieldError{Parser: parserName, Field: "statement id"}
	}
	doc := buildDocument(stmt, p.opts.Namespace, p.opts.Now())

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if p.opts.Indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return &parsererror.XMLError{Op: "encode", Err: err}
	}
	buf.WriteString("\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &parsererror.IOError{Op: "write", Err: err}
	}

	p.LogWritten(stmt.StatementID, len(stmt.Transactions))
	return nil
}
