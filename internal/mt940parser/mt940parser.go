// Package mt940parser reads and writes the tag-prefixed line statement format
// (SWIFT MT940).
package mt940parser

import (
	"io"
	"strings"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
)

const parserName = "MT940"

// MT940Parser is the line-format codec.
type MT940Parser struct {
	parser.BaseParser
}

// NewMT940Parser creates the codec. A nil logger selects the default logger.
func NewMT940Parser(logger logging.Logger) *MT940Parser {
	return &MT940Parser{BaseParser: parser.NewBaseParser(parserName, logger)}
}

// scanState holds the statement-level accumulators and the transaction in
// progress during one forward scan.
type scanState struct {
	statementID    string
	account        string
	sequenceNumber string
	currency       string
	opening        *models.Balance
	closing        *models.Balance
	transactions   []models.Transaction
	current        *models.Transaction
}

// flush moves the transaction in progress into the statement.
func (s *scanState) flush() {
	if s.current != nil {
		s.transactions = append(s.transactions, *s.current)
		s.current = nil
	}
}

// Parse reads one MT940 statement. LF and CRLF line endings are accepted.
func (p *MT940Parser) Parse(r io.Reader) (*models.Statement, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := splitLines(string(data))
	logger := p.GetLogger()

	st := &scanState{}
	for i := 0; i < len(lines); i++ {
		tag, content, ok := splitTag(lines[i])
		if !ok {
			continue
		}
		f := field{line: i + 1, raw: lines[i], tag: tag, content: content}

		switch {
		case tag == "20":
			st.statementID = strings.TrimSpace(content)
		case tag == "25":
			st.account = strings.TrimSpace(content)
		case tag == "28C" || tag == "28":
			st.sequenceNumber = strings.TrimSpace(content)
		case strings.HasPrefix(tag, "60"):
			bal, err := parseBalance(f, models.BalanceOpening)
			if err != nil {
				return nil, err
			}
			st.opening = bal
			if st.currency == "" {
				st.currency = bal.Currency
			}
		case tag == "61":
			st.flush()
			tx, err := parseStatementLine(f, st.currency)
			if err != nil {
				return nil, err
			}
			st.current = &tx
		case tag == "86":
			description, consumed := readDescription(lines, i)
			i += consumed
			if st.current == nil {
				logger.Debug("Ignoring :86: outside a transaction", logging.F(logging.FieldLine, f.line))
				continue
			}
			st.current.Description = description
		case strings.HasPrefix(tag, "62"):
			// The closing balance ends the transaction list.
			st.flush()
			bal, err := parseBalance(f, models.BalanceClosing)
			if err != nil {
				return nil, err
			}
			st.closing = bal
		default:
			logger.Debug("Skipping unsupported tag",
				logging.F(logging.FieldTag, tag), logging.F(logging.FieldLine, f.line))
		}
	}
	st.flush()

	if st.statementID == "" {
		return nil, &parsererror.MissingFieldError{Parser: parserName, Field: ":20: statement reference"}
	}
	if st.account == "" {
		return nil, &parsererror.MissingFieldError{Parser: parserName, Field: ":25: account identification"}
	}
	if st.currency == "" && st.closing != nil {
		st.currency = st.closing.Currency
	}

	stmt := models.NewStatement(st.statementID, st.account, st.currency)
	stmt.SequenceNumber = st.sequenceNumber
	stmt.OpeningBalance = st.opening
	stmt.ClosingBalance = st.closing
	for _, tx := range st.transactions {
		if tx.Currency == "" {
			tx.Currency = st.currency
		}
		stmt.AddTransaction(tx)
	}

	p.LogParsed(stmt.StatementID, len(stmt.Transactions))
	return stmt, nil
}

// readDescription returns the :86: text at lines[start] joined with every
// continuation line, and how many continuation lines it consumed.
func readDescription(lines []string, start int) (string, int) {
	_, content, _ := splitTag(lines[start])
	parts := []string{strings.TrimSpace(content)}

	consumed := 0
	for j := start + 1; j < len(lines) && isContinuation(lines[j]); j++ {
		consumed++
		if part := strings.TrimSpace(lines[j]); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), consumed
}

// isContinuation is true for free-text lines: not a tag and not block framing.
func isContinuation(line string) bool {
	trimmed := strings.TrimSpace(line)
	return !strings.HasPrefix(line, ":") &&
		!strings.HasPrefix(trimmed, "-}") &&
		!strings.HasPrefix(trimmed, "{")
}

func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
