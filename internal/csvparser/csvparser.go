// Package csvparser reads and writes the bilingual tabular statement export.
// The format carries no statement identifier and no currency; both are
// synthesized from Options.
package csvparser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/stmtconv/internal/common"
	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
	"fjacquet/stmtconv/internal/textutils"
)

const parserName = "CSV"

// Options configure the tabular codec.
type Options struct {
	Delimiter       rune
	DefaultCurrency string
	IDPrefix        string
	Now             func() time.Time
}

// DefaultOptions returns comma-separated RUB statements with CSV-{unix} ids.
func DefaultOptions() Options {
	return Options{
		Delimiter:       common.DefaultDelimiter,
		DefaultCurrency: "RUB",
		IDPrefix:        "CSV",
		Now:             time.Now,
	}
}

// CSVParser is the tabular-format codec.
type CSVParser struct {
	parser.BaseParser
	opts Options
}

// NewCSVParser creates the codec. Zero option fields take their defaults.
func NewCSVParser(logger logging.Logger, opts Options) *CSVParser {
	defaults := DefaultOptions()
	if opts.Delimiter == 0 {
		opts.Delimiter = defaults.Delimiter
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = defaults.DefaultCurrency
	}
	if opts.IDPrefix == "" {
		opts.IDPrefix = defaults.IDPrefix
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	return &CSVParser{BaseParser: parser.NewBaseParser(parserName, logger), opts: opts}
}

// Parse reads every posting row. Rows without a date or without any amount
// are skipped.
func (p *CSVParser) Parse(r io.Reader) (*models.Statement, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return nil, err
	}
	logger := p.GetLogger()

	rows, err := common.ReadRows[statementRow](bytes.NewReader(data), p.opts.Delimiter, headerAliases, logger)
	if err != nil {
		return nil, err
	}

	own := ""
	var transactions []models.Transaction
	for i, row := range rows {
		rowNumber := i + 2 // header is row 1
		tx, ok, err := p.rowToTransaction(row, rowNumber, &own)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Debug("Skipping row", logging.F(logging.FieldRow, rowNumber))
			continue
		}
		transactions = append(transactions, tx)
	}

	if own == "" {
		own = models.UnknownAccount
	}
	id := fmt.Sprintf("%s-%d", p.opts.IDPrefix, p.opts.Now().Unix())
	stmt := models.NewStatement(id, own, p.opts.DefaultCurrency)
	for _, tx := range transactions {
		stmt.AddTransaction(tx)
	}

	p.LogParsed(stmt.StatementID, len(stmt.Transactions))
	return stmt, nil
}

// rowToTransaction maps one row. own is the statement's account, learned
// from the first row that names it and kept for the rest of the document.
func (p *CSVParser) rowToTransaction(row statementRow, rowNumber int, own *string) (models.Transaction, bool, error) {
	if strings.TrimSpace(row.Date) == "" {
		return models.Transaction{}, false, nil
	}

	date, _, err := dateutils.ParseFirstMatch(row.Date, dateutils.TabularLayouts)
	if err != nil {
		return models.Transaction{}, false, parsererror.InvalidDate(parserName, columnAt(ColumnDate, rowNumber), row.Date)
	}

	var (
		amountCell, amountColumn  string
		ownCell, counterpartyCell string
		dc                        models.DebitCredit
	)
	switch {
	case strings.TrimSpace(row.DebitAmount) != "":
		amountCell, amountColumn = row.DebitAmount, ColumnDebitAmount
		ownCell, counterpartyCell = row.DebitAccount, row.CreditAccount
		dc = models.Debit
	case strings.TrimSpace(row.CreditAmount) != "":
		amountCell, amountColumn = row.CreditAmount, ColumnCreditAmount
		ownCell, counterpartyCell = row.CreditAccount, row.DebitAccount
		dc = models.Credit
	default:
		return models.Transaction{}, false, nil
	}

	amount, err := currencyutils.ParseSpacedAmount(amountCell)
	if err != nil {
		return models.Transaction{}, false, parsererror.InvalidAmount(parserName, columnAt(amountColumn, rowNumber), amountCell)
	}

	if *own == "" {
		*own = textutils.FirstLine(ownCell)
	}

	tx := models.Transaction{
		Reference:           strings.TrimSpace(row.DocumentNo),
		Date:                date,
		ValueDate:           dateutils.Ptr(date),
		Amount:              amount,
		Currency:            p.opts.DefaultCurrency,
		DebitCredit:         dc,
		CounterpartyAccount: textutils.FirstLine(counterpartyCell),
		CounterpartyName:    counterpartyName(counterpartyCell, row.Purpose),
		Description:         strings.TrimSpace(row.Purpose),
	}
	if strings.TrimSpace(row.Bank) != "" {
		tx.BankIdentifier = textutils.ExtractBIC(row.Bank)
	}
	if tx.Reference == "" {
		tx.Reference = models.SynthesizeReference(tx.Date, tx.Amount)
	}
	return tx, true, nil
}

// counterpartyName takes the third line of the counterparty cell (account,
// tax code, name), counting blank lines, and otherwise the first line of the
// purpose.
func counterpartyName(cell, purpose string) string {
	if lines := textutils.RawLines(cell); len(lines) >= 3 && lines[2] != "" {
		return lines[2]
	}
	return textutils.FirstLine(purpose)
}

func columnAt(column string, row int) string {
	return fmt.Sprintf("%s (row %d)", column, row)
}

// Write emits one row per transaction with English headers. The statement's
// own account goes to the debit or credit account column according to the
// transaction's indicator.
func (p *CSVParser) Write(w io.Writer, stmt *models.Statement) error {
	rows := make([]statementRow, 0, len(stmt.Transactions))
	for _, tx := range stmt.Transactions {
		row := statementRow{
			Date:       tx.Date.Format(dateutils.DateLayoutEuropean),
			DocumentNo: tx.Reference,
			Purpose:    tx.Description,
			Bank:       tx.BankIdentifier,
		}
		amount := currencyutils.FormatPlain(tx.Amount)
		if tx.IsDebit() {
			row.DebitAccount, row.CreditAccount = stmt.Account, tx.CounterpartyAccount
			row.DebitAmount = amount
		} else {
			row.DebitAccount, row.CreditAccount = tx.CounterpartyAccount, stmt.Account
			row.CreditAmount = amount
		}
		rows = append(rows, row)
	}

	if err := common.WriteRows(w, rows, p.opts.Delimiter); err != nil {
		return err
	}
	p.LogWritten(stmt.StatementID, len(stmt.Transactions))
	return nil
}

// ValidateFormat reports whether the header row names a date column and at
// least one amount column in either vocabulary.
func (p *CSVParser) ValidateFormat(r io.Reader) (bool, error) {
	data, err := p.ReadAll(r)
	if err != nil {
		return false, err
	}
	header, err := common.NewReader(bytes.NewReader(data), p.opts.Delimiter).Read()
	if err != nil {
		p.GetLogger().Debug("No CSV header found", logging.F(logging.FieldReason, err.Error()))
		return false, nil
	}

	seen := make(map[string]bool, len(header))
	for _, cell := range header {
		seen[headerAliases.Canonical(cell)] = true
	}
	return seen[ColumnDate] && (seen[ColumnDebitAmount] || seen[ColumnCreditAmount]), nil
}
