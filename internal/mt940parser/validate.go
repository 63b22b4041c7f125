package mt940parser

import (
	"io"

	"fjacquet/stmtconv/internal/logging"
)

// LooksLikeStatement reports whether data carries both a :20: and a :25:
// line, the minimum every statement has.
func LooksLikeStatement(data []byte) bool {
	var hasID, hasAccount bool
	for _, line := range splitLines(string(data)) {
		tag, _, ok := splitTag(line)
		if !ok {
			continue
		}
		switch tag {
		case "20":
			hasID = true
		case "25":
			hasAccount = true
		}
		if hasID && hasAccount {
			return true
		}
	}
	return false
}

// ValidateFormat checks the input without parsing it.
func (p *MT940Parser) ValidateFormat(r io.Reader) (bool, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return false, err
	}
	if !LooksLikeStatement(data) {
		p.GetLogger().Debug("Input lacks :20: or :25: lines", logging.F(logging.FieldReason, "not mt940"))
		return false, nil
	}
	return true, nil
}
