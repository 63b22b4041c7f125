package csvparser

import "fjacquet/stmtconv/internal/common"

// Canonical column names. Output always uses these.
const (
	ColumnDate          = "Date"
	ColumnDebitAccount  = "Debit Account"
	ColumnCreditAccount = "Credit Account"
	ColumnDebitAmount   = "Debit Amount"
	ColumnCreditAmount  = "Credit Amount"
	ColumnDocumentNo    = "Document No"
	ColumnPurpose       = "Purpose"
	ColumnBank          = "Bank"
)

// statementRow is one posting of the tabular export.
type statementRow struct {
	Date          string `csv:"Date"`
	DebitAccount  string `csv:"Debit Account"`
	CreditAccount string `csv:"Credit Account"`
	DebitAmount   string `csv:"Debit Amount"`
	CreditAmount  string `csv:"Credit Amount"`
	DocumentNo    string `csv:"Document No"`
	Purpose       string `csv:"Purpose"`
	Bank          string `csv:"Bank"`
}

// headerAliases accepts the localized export headers as well as English and
// snake_case spellings.
var headerAliases = common.HeaderAliases{
	"дата проводки": ColumnDate,
	"date":          ColumnDate,

	"счет дебет":    ColumnDebitAccount,
	"счёт дебет":    ColumnDebitAccount,
	"debit account": ColumnDebitAccount,
	"debit_account": ColumnDebitAccount,

	"счет кредит":    ColumnCreditAccount,
	"счёт кредит":    ColumnCreditAccount,
	"credit account": ColumnCreditAccount,
	"credit_account": ColumnCreditAccount,

	"сумма по дебету": ColumnDebitAmount,
	"debit amount":    ColumnDebitAmount,
	"debit_amount":    ColumnDebitAmount,

	"сумма по кредиту": ColumnCreditAmount,
	"credit amount":    ColumnCreditAmount,
	"credit_amount":    ColumnCreditAmount,

	"№ документа": ColumnDocumentNo,
	"document no": ColumnDocumentNo,
	"reference":   ColumnDocumentNo,

	"назначение платежа": ColumnPurpose,
	"purpose":            ColumnPurpose,
	"description":        ColumnPurpose,

	"банк (бик и наименование)": ColumnBank,
	"bank": ColumnBank,
}
