package camtparser

import (
	"bytes"
	"io"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/xmlutils"
)

// LooksLikeStatement reports whether data is XML holding a
// BkToCstmrStmt/Stmt element, whatever its namespace version.
func LooksLikeStatement(data []byte) bool {
	root, err := xmlutils.LoadXML(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return xmlutils.Exists(root, xmlutils.PathStatement)
}

// ValidateFormat checks that r holds a statement with an identifier, without
// projecting it.
func (p *ISO20022Parser) ValidateFormat(r io.Reader) (bool, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return false, err
	}
	root, err := xmlutils.LoadXML(bytes.NewReader(data))
	if err != nil {
		p.GetLogger().Debug("Input is not well-formed XML", logging.F(logging.FieldReason, err.Error()))
		return false, nil
	}

	ids, err := xmlutils.ExtractFromXML(root, xmlutils.PathStatementID)
	if err != nil {
		return false, err
	}
	if xmlutils.GetOrEmpty(ids, 0) == "" {
		p.GetLogger().Debug("No statement identifier found")
		return false, nil
	}
	return true, nil
}
