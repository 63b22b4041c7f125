package camtparser

import (
	"regexp"
	"strconv"
	"time"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)

// buildDocument is the inverse of projectStatement. now supplies the creation
// timestamp and the booking date of undated entries.
func buildDocument(stmt *models.Statement, namespace string, now time.Time) *Document {
	created := dateutils.Truncate(now)
	if stmt.CreationDate != nil {
		created = *stmt.CreationDate
	}

	out := Stmt{
		Id: stmt.StatementID,
		Acct: CashAccount{
			Id:  accountIdentification(stmt.Account),
			Ccy: stmt.Currency,
			Nm:  stmt.AccountHolder,
		},
	}
	if _, err := strconv.ParseUint(stmt.SequenceNumber, 10, 64); err == nil {
		out.ElctrncSeqNb = stmt.SequenceNumber
	}
	if stmt.CreationDate != nil {
		out.CreDtTm = dateutils.FormatISODateTime(*stmt.CreationDate)
	}
	if stmt.FromDate != nil || stmt.ToDate != nil {
		out.FrToDt = &DateTimePeriod{}
		if stmt.FromDate != nil {
			out.FrToDt.FrDtTm = dateutils.FormatISODateTime(*stmt.FromDate)
		}
		if stmt.ToDate != nil {
			out.FrToDt.ToDtTm = dateutils.FormatISODateTime(*stmt.ToDate)
		}
	}

	if stmt.OpeningBalance != nil {
		out.Bal = append(out.Bal, buildBalance("OPBD", stmt.OpeningBalance, stmt.Currency))
	}
	if stmt.ClosingBalance != nil {
		out.Bal = append(out.Bal, buildBalance("CLBD", stmt.ClosingBalance, stmt.Currency))
	}

	for _, tx := range stmt.Transactions {
		out.Ntry = append(out.Ntry, buildEntry(tx, stmt.Currency, created))
	}

	return &Document{
		Xmlns: namespace,
		BkToCstmrStmt: BkToCstmrStmt{
			GrpHdr: GroupHeader{
				MsgId:   stmt.StatementID,
				CreDtTm: dateutils.FormatISODateTime(created),
			},
			Stmt: []Stmt{out},
		},
	}
}

// accountIdentification puts IBAN-shaped identifiers in IBAN and anything
// else in Othr/Id.
func accountIdentification(account string) AccountIdentification {
	if ibanPattern.MatchString(account) {
		return AccountIdentification{IBAN: account}
	}
	return AccountIdentification{Othr: &GenericAccountIdentification{Id: account}}
}

func buildBalance(code string, bal *models.Balance, currency string) CashBalance {
	return CashBalance{
		Tp:        BalanceTypeChoice{CdOrPrtry: CodeOrProprietary{Cd: code}},
		Amt:       Amount{Value: currencyutils.FormatPlain(bal.Amount), Ccy: orDefault(bal.Currency, currency)},
		CdtDbtInd: bal.DebitCredit.ISOCode(),
		Dt:        &DateAndDateTimeChoice{Dt: bal.Date.Format(dateutils.DateLayoutISO)},
	}
}

func buildEntry(tx models.Transaction, currency string, today time.Time) ReportEntry {
	booked := tx.Date
	if booked.IsZero() {
		booked = today
	}

	family := "ICDT"
	if tx.IsCredit() {
		family = "RCDT"
	}

	entry := ReportEntry{
		NtryRef:   tx.Reference,
		Amt:       Amount{Value: currencyutils.FormatPlain(tx.Amount), Ccy: orDefault(tx.Currency, currency)},
		CdtDbtInd: tx.DebitCredit.ISOCode(),
		Sts:       "BOOK",
		BookgDt:   &DateAndDateTimeChoice{Dt: booked.Format(dateutils.DateLayoutISO)},
		BkTxCd: &BankTransactionCode{
			Domn: &BankTransactionDomain{
				Cd:   "PMNT",
				Fmly: BankTransactionFamily{Cd: family, SubFmlyCd: "OTHR"},
			},
		},
	}
	if tx.ValueDate != nil {
		entry.ValDt = &DateAndDateTimeChoice{Dt: tx.ValueDate.Format(dateutils.DateLayoutISO)}
	}

	if details, ok := buildDetails(tx); ok {
		entry.NtryDtls = &EntryDetails{TxDtls: []TransactionDetails{details}}
	}
	return entry
}

// buildDetails fills the counterparty on the side opposite to the entry's own
// indicator: the debtor pays a credit, the creditor receives a debit.
func buildDetails(tx models.Transaction) (TransactionDetails, bool) {
	var details TransactionDetails
	used := false

	if tx.CounterpartyName != "" || tx.CounterpartyAccount != "" {
		var party *PartyIdentification
		var account *AccountReference
		if tx.CounterpartyName != "" {
			party = &PartyIdentification{Nm: tx.CounterpartyName}
		}
		if tx.CounterpartyAccount != "" {
			account = &AccountReference{Id: accountIdentification(tx.CounterpartyAccount)}
		}
		if tx.IsCredit() {
			details.RltdPties = &RelatedParties{Dbtr: party, DbtrAcct: account}
		} else {
			details.RltdPties = &RelatedParties{Cdtr: party, CdtrAcct: account}
		}
		used = true
	}

	if tx.BankIdentifier != "" {
		agent := &FinancialInstitution{FinInstnId: FinancialInstitutionIdentification{BIC: tx.BankIdentifier}}
		if tx.IsCredit() {
			details.RltdAgts = &RelatedAgents{DbtrAgt: agent}
		} else {
			details.RltdAgts = &RelatedAgents{CdtrAgt: agent}
		}
		used = true
	}

	if tx.Description != "" {
		details.RmtInf = &RemittanceInformation{Ustrd: []string{tx.Description}}
		used = true
	}
	if tx.AdditionalInfo != "" {
		details.AddtlTxInf = tx.AdditionalInfo
		used = true
	}
	return details, used
}
