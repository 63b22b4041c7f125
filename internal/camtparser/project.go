package camtparser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"
)

// balanceTypeFromCode maps a balance type code; unknown codes are intermediate.
func balanceTypeFromCode(code string) models.BalanceType {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "OPBD", "OPAV":
		return models.BalanceOpening
	case "CLBD", "CLAV":
		return models.BalanceClosing
	case "PRCD":
		return models.BalanceIntermediate
	}
	return models.BalanceIntermediate
}

// projectStatement maps one decoded statement onto the canonical model.
// Unreadable statement metadata dates (creation, period) are left unset and
// reported in ignored rather than failing the projection.
func projectStatement(stmt *Stmt) (out *models.Statement, ignored []error, err error) {
	currency := statementCurrency(stmt)
	out = models.NewStatement(stmt.Id, accountID(&stmt.Acct.Id), currency)
	out.SequenceNumber = strings.TrimSpace(stmt.ElctrncSeqNb)
	out.AccountHolder = stmt.Acct.Nm
	if out.AccountHolder == "" && stmt.Acct.Ownr != nil {
		out.AccountHolder = stmt.Acct.Ownr.Nm
	}

	lenient := func(field, raw string) *time.Time {
		t, derr := optionalDate(field, raw)
		if derr != nil {
			ignored = append(ignored, derr)
		}
		return t
	}
	out.CreationDate = lenient("Stmt/CreDtTm", stmt.CreDtTm)
	if stmt.FrToDt != nil {
		out.FromDate = lenient("FrToDt/FrDtTm", stmt.FrToDt.FrDtTm)
		out.ToDate = lenient("FrToDt/ToDtTm", stmt.FrToDt.ToDtTm)
	}

	for i := range stmt.Bal {
		bal, berr := projectBalance(&stmt.Bal[i], currency)
		if berr != nil {
			return nil, nil, berr
		}
		switch bal.BalanceType {
		case models.BalanceOpening:
			out.OpeningBalance = bal
		case models.BalanceClosing:
			out.ClosingBalance = bal
		}
	}

	for i := range stmt.Ntry {
		tx, terr := projectEntry(&stmt.Ntry[i], currency)
		if terr != nil {
			return nil, nil, terr
		}
		out.AddTransaction(tx)
	}
	return out, ignored, nil
}

// accountID resolves IBAN, then the other identification, then UNKNOWN.
func accountID(id *AccountIdentification) string {
	if v := strings.TrimSpace(id.IBAN); v != "" {
		return v
	}
	if id.Othr != nil {
		if v := strings.TrimSpace(id.Othr.Id); v != "" {
			return v
		}
	}
	return models.UnknownAccount
}

// statementCurrency prefers the account currency, then the first currency
// found on a balance or an entry.
func statementCurrency(stmt *Stmt) string {
	if stmt.Acct.Ccy != "" {
		return stmt.Acct.Ccy
	}
	for _, bal := range stmt.Bal {
		if bal.Amt.Ccy != "" {
			return bal.Amt.Ccy
		}
	}
	for _, ntry := range stmt.Ntry {
		if ntry.Amt.Ccy != "" {
			return ntry.Amt.Ccy
		}
	}
	return ""
}

func projectBalance(bal *CashBalance, currency string) (*models.Balance, error) {
	code := bal.Tp.CdOrPrtry.Cd
	if code == "" {
		code = bal.Tp.CdOrPrtry.Prtry
	}

	amount, dc, err := amountAndIndicator("Bal", bal.Amt, bal.CdtDbtInd)
	if err != nil {
		return nil, err
	}

	date, err := choiceDate("Bal/Dt", bal.Dt)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, &parsererror.MissingFieldError{Parser: parserName, Field: "Bal/Dt (balance " + code + ")"}
	}

	return &models.Balance{
		BalanceType: balanceTypeFromCode(code),
		Amount:      amount,
		Currency:    orDefault(bal.Amt.Ccy, currency),
		DebitCredit: dc,
		Date:        *date,
	}, nil
}

func projectEntry(ntry *ReportEntry, currency string) (models.Transaction, error) {
	amount, dc, err := amountAndIndicator("Ntry", ntry.Amt, ntry.CdtDbtInd)
	if err != nil {
		return models.Transaction{}, err
	}

	valueDate, err := choiceDate("Ntry/ValDt", ntry.ValDt)
	if err != nil {
		return models.Transaction{}, err
	}
	bookingDate, err := choiceDate("Ntry/BookgDt", ntry.BookgDt)
	if err != nil {
		return models.Transaction{}, err
	}
	if bookingDate == nil {
		bookingDate = valueDate
	}
	if bookingDate == nil {
		return models.Transaction{}, &parsererror.MissingFieldError{Parser: parserName, Field: "Ntry/BookgDt"}
	}

	tx := models.Transaction{
		Date:        *bookingDate,
		ValueDate:   valueDate,
		Amount:      amount,
		Currency:    orDefault(ntry.Amt.Ccy, currency),
		DebitCredit: dc,
	}

	details := firstDetails(ntry)
	tx.Reference = entryReference(ntry, details)
	if tx.Reference == "" {
		tx.Reference = models.SynthesizeReference(tx.Date, tx.Amount)
	}
	tx.Description = entryDescription(ntry, details)

	if details != nil {
		applyRelatedParties(&tx, details.RltdPties)
		applyRelatedAgents(&tx, details.RltdAgts)
		tx.AdditionalInfo = strings.TrimSpace(details.AddtlTxInf)
	}
	return tx, nil
}

func firstDetails(ntry *ReportEntry) *TransactionDetails {
	if ntry.NtryDtls == nil || len(ntry.NtryDtls.TxDtls) == 0 {
		return nil
	}
	return &ntry.NtryDtls.TxDtls[0]
}

// entryReference tries NtryRef, the servicer reference, then the end-to-end id.
func entryReference(ntry *ReportEntry, details *TransactionDetails) string {
	candidates := []string{ntry.NtryRef, ntry.AcctSvcrRef}
	if details != nil && details.Refs != nil {
		candidates = append(candidates, details.Refs.AcctSvcrRef, details.Refs.EndToEndId)
	}
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" && c != "NOTPROVIDED" {
			return c
		}
	}
	return ""
}

// entryDescription prefers remittance text, then the proprietary bank
// transaction code, then the additional entry information.
func entryDescription(ntry *ReportEntry, details *TransactionDetails) string {
	if details != nil && details.RmtInf != nil {
		var parts []string
		for _, line := range details.RmtInf.Ustrd {
			if line = strings.TrimSpace(line); line != "" {
				parts = append(parts, line)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	if ntry.BkTxCd != nil && ntry.BkTxCd.Prtry != nil {
		if code := strings.TrimSpace(ntry.BkTxCd.Prtry.Cd); code != "" {
			return code
		}
	}
	return strings.TrimSpace(ntry.AddtlNtryInf)
}

// applyRelatedParties copies debtor fields, then creditor fields, so a
// creditor value wins when both sides are present.
func applyRelatedParties(tx *models.Transaction, parties *RelatedParties) {
	if parties == nil {
		return
	}
	for _, party := range []*PartyIdentification{parties.Dbtr, parties.Cdtr} {
		if party != nil && strings.TrimSpace(party.Nm) != "" {
			tx.CounterpartyName = strings.TrimSpace(party.Nm)
		}
	}
	for _, acct := range []*AccountReference{parties.DbtrAcct, parties.CdtrAcct} {
		if acct == nil {
			continue
		}
		if id := accountID(&acct.Id); id != models.UnknownAccount {
			tx.CounterpartyAccount = id
		}
	}
}

func applyRelatedAgents(tx *models.Transaction, agents *RelatedAgents) {
	if agents == nil {
		return
	}
	for _, agent := range []*FinancialInstitution{agents.DbtrAgt, agents.CdtrAgt} {
		if agent == nil {
			continue
		}
		if bic := orDefault(agent.FinInstnId.BIC, agent.FinInstnId.BICFI); bic != "" {
			tx.BankIdentifier = strings.TrimSpace(bic)
		}
	}
}

// amountAndIndicator decodes the amount text and its CdtDbtInd sibling.
func amountAndIndicator(element string, amt Amount, indicator string) (decimal.Decimal, models.DebitCredit, error) {
	amount, err := currencyutils.ParseDecimal(amt.Value)
	if err != nil {
		return decimal.Zero, "", parsererror.InvalidAmount(parserName, element+"/Amt", amt.Value)
	}
	dc, err := models.ParseDebitCredit(indicator)
	if err != nil {
		return decimal.Zero, "", &parsererror.ParseError{Parser: parserName, Field: element + "/CdtDbtInd", Value: indicator, Err: err}
	}
	return amount.Abs(), dc, nil
}

// choiceDate reads a Dt or DtTm choice; nil when the element is absent.
func choiceDate(field string, choice *DateAndDateTimeChoice) (*time.Time, error) {
	if choice == nil {
		return nil, nil
	}
	if raw := strings.TrimSpace(choice.Dt); raw != "" {
		t, err := dateutils.ParseISODate(raw)
		if err != nil {
			return nil, parsererror.InvalidDate(parserName, field, raw)
		}
		return &t, nil
	}
	if raw := strings.TrimSpace(choice.DtTm); raw != "" {
		t, err := dateutils.ParseISODateTime(raw)
		if err != nil {
			return nil, parsererror.InvalidDate(parserName, field, raw)
		}
		return &t, nil
	}
	return nil, nil
}

// optionalDate reads a plain element that may hold a date or a date-time.
func optionalDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.Contains(raw, "T") {
		return choiceDate(field, &DateAndDateTimeChoice{DtTm: raw})
	}
	return choiceDate(field, &DateAndDateTimeChoice{Dt: raw})
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
