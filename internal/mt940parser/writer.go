package mt940parser

import (
	"bufio"
	"fmt"
	"io"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"
)

const (
	blockHeader  = "{1:F01BANKXXXXAXXX0000000000}{2:I940BANKXXXXAXXXXN}{4:"
	blockTrailer = "-}"
)

// Write renders stmt as one MT940 message. The :61: entry date is always the
// booking date's month/day, so an entry date in another year than the value
// date does not survive a round trip.
func (p *MT940Parser) Write(w io.Writer, stmt *models.Statement) error {
	if stmt.StatementID == "" {
		return &parsererror.MissingFieldError{Parser: parserName, Field: "statement id"}
	}
	if stmt.Account == "" {
		return &parsererror.MissingFieldError{Parser: parserName, Field: "account"}
	}

	bw := bufio.NewWriter(w)
	lines := []string{
		blockHeader,
		":20:" + stmt.StatementID,
		":25:" + stmt.Account,
	}
	if stmt.SequenceNumber != "" {
		lines = append(lines, ":28C:"+stmt.SequenceNumber)
	}

	if stmt.OpeningBalance != nil {
		line, err := balanceLine(balanceTag("60", stmt.OpeningBalance, models.BalanceOpening), stmt.OpeningBalance, stmt.Currency)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	for _, tx := range stmt.Transactions {
		lines = append(lines, fmt.Sprintf(":61:%s%s%s%sNTRF//%s",
			dateutils.FormatYYMMDD(tx.EffectiveValueDate()),
			dateutils.FormatMMDD(tx.Date),
			tx.DebitCredit.Letter(),
			currencyutils.FormatCommaAmount(tx.Amount),
			tx.Reference))
		if tx.Description != "" {
			lines = append(lines, ":86:"+tx.Description)
		}
	}

	if stmt.ClosingBalance != nil {
		line, err := balanceLine(balanceTag("62", stmt.ClosingBalance, models.BalanceClosing), stmt.ClosingBalance, stmt.Currency)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	lines = append(lines, blockTrailer)

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return &parsererror.IOError{Op: "write", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &parsererror.IOError{Op: "write", Err: err}
	}

	p.LogWritten(stmt.StatementID, len(stmt.Transactions))
	return nil
}

// balanceTag marks a balance final (F) when it carries the type its slot
// expects and intermediate (M) otherwise.
func balanceTag(slot string, bal *models.Balance, final models.BalanceType) string {
	if bal.BalanceType == final {
		return slot + "F"
	}
	return slot + "M"
}

func balanceLine(tag string, bal *models.Balance, fallbackCurrency string) (string, error) {
	currency := bal.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	if len(currency) != 3 {
		return "", &parsererror.ConversionError{
			From:   "statement",
			To:     parserName,
			Reason: fmt.Sprintf("balance currency %q is not a three-letter code", currency),
		}
	}
	return fmt.Sprintf(":%s:%s%s%s%s", tag,
		bal.DebitCredit.Letter(),
		dateutils.FormatYYMMDD(bal.Date),
		currency,
		currencyutils.FormatCommaAmount(bal.Amount)), nil
}
