package mt940parser

import (
	"strings"
	"unicode"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"
)

// Offsets inside a :60x:/:62x: balance: D/C, YYMMDD date, currency, amount.
const (
	balanceDateStart     = 1
	balanceCurrencyStart = 7
	balanceAmountStart   = 10
	minBalanceLength     = 11
)

// Offsets inside a :61: statement line.
const (
	valueDateLength = 6
	entryDateLength = 4
)

// field is one tagged line with its 1-based position, kept for error reporting.
type field struct {
	line    int
	raw     string
	tag     string
	content string
}

func (f field) fail(msg string, err error) error {
	return &parsererror.LineError{Line: f.line, Content: f.raw, Msg: msg, Err: err}
}

// splitTag recognizes ":TAG:content" lines.
func splitTag(line string) (tag, content string, ok bool) {
	if len(line) < 3 || line[0] != ':' {
		return "", "", false
	}
	end := strings.IndexByte(line[1:], ':')
	if end <= 0 {
		return "", "", false
	}
	return line[1 : end+1], line[end+2:], true
}

// slice returns s[from:to] or false when the range is out of bounds.
// to < 0 means "until the end".
func slice(s string, from, to int) (string, bool) {
	if to < 0 {
		to = len(s)
	}
	if from < 0 || from > to || to > len(s) {
		return "", false
	}
	return s[from:to], true
}

func parseBalance(f field, balanceType models.BalanceType) (*models.Balance, error) {
	content := strings.TrimSpace(f.content)
	if len(content) < minBalanceLength {
		return nil, f.fail("balance", parsererror.ErrContentTooShort)
	}

	dc, err := models.ParseDebitCredit(content[:balanceDateStart])
	if err != nil {
		return nil, f.fail("balance debit/credit mark", err)
	}
	date, err := dateutils.ParseYYMMDD(content[balanceDateStart:balanceCurrencyStart])
	if err != nil {
		return nil, f.fail("balance date", err)
	}
	amount, err := currencyutils.ParseCommaAmount(content[balanceAmountStart:])
	if err != nil {
		return nil, f.fail("balance amount", err)
	}

	return &models.Balance{
		BalanceType: balanceType,
		Amount:      amount,
		Currency:    content[balanceCurrencyStart:balanceAmountStart],
		DebitCredit: dc,
		Date:        date,
	}, nil
}

// parseStatementLine decodes a :61: line.
//
// The optional MMDD entry date is detected by testing whether the third
// character after the value date is a digit. The test misreads lines that
// omit the entry date when the amount starts right after the D/C mark, e.g.
// "240101D100,00" takes "D100" for an entry date and fails.
func parseStatementLine(f field, currency string) (models.Transaction, error) {
	content := strings.TrimRight(f.content, " ")

	raw, ok := slice(content, 0, valueDateLength)
	if !ok {
		return models.Transaction{}, f.fail("transaction value date", parsererror.ErrContentTooShort)
	}
	valueDate, err := dateutils.ParseYYMMDD(raw)
	if err != nil {
		return models.Transaction{}, f.fail("transaction value date", err)
	}

	pos := valueDateLength
	date := valueDate
	if len(content) > pos+entryDateLength && isDigit(content[pos+2]) {
		entry, _ := slice(content, pos, pos+entryDateLength)
		if date, err = dateutils.ParseMMDD(entry, valueDate.Year()); err != nil {
			return models.Transaction{}, f.fail("transaction entry date", err)
		}
		pos += entryDateLength
	}

	mark, ok := slice(content, pos, pos+1)
	if !ok {
		return models.Transaction{}, f.fail("transaction debit/credit mark", parsererror.ErrContentTooShort)
	}
	dc, err := models.ParseDebitCredit(mark)
	if err != nil {
		return models.Transaction{}, f.fail("transaction debit/credit mark", err)
	}
	pos++

	rest := content[pos:]
	amountEnd := strings.IndexFunc(rest, unicode.IsLetter)
	if amountEnd < 0 {
		amountEnd = len(rest)
	}
	amount, err := currencyutils.ParseCommaAmount(rest[:amountEnd])
	if err != nil {
		return models.Transaction{}, f.fail("transaction amount", err)
	}

	reference := extractReference(rest[amountEnd:])
	if reference == "" {
		reference = models.SynthesizeReference(date, amount)
	}

	return models.Transaction{
		Reference:   reference,
		Date:        date,
		ValueDate:   dateutils.Ptr(valueDate),
		Amount:      amount,
		Currency:    currency,
		DebitCredit: dc,
	}, nil
}

// extractReference keeps the text after the last "//", or the whole
// remainder when there is none.
func extractReference(rest string) string {
	if idx := strings.LastIndex(rest, "//"); idx >= 0 {
		rest = rest[idx+2:]
	}
	return strings.TrimSpace(rest)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
