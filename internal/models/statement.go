// Package models holds the canonical statement representation shared by every codec.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is an opening, closing or intermediate account position.
type Balance struct {
	BalanceType BalanceType     `json:"balance_type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	DebitCredit DebitCredit     `json:"debit_credit"`
	Date        time.Time       `json:"date"`
}

// Transaction is one ledger entry. Amount is always a non-negative magnitude;
// the direction lives in DebitCredit. Empty strings mean absent.
type Transaction struct {
	Reference           string          `json:"reference"`
	Date                time.Time       `json:"date"`
	ValueDate           *time.Time      `json:"value_date,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	DebitCredit         DebitCredit     `json:"debit_credit"`
	Account             string          `json:"account,omitempty"`
	CounterpartyAccount string          `json:"counterparty_account,omitempty"`
	CounterpartyName    string          `json:"counterparty_name,omitempty"`
	BankIdentifier      string          `json:"bank_identifier,omitempty"`
	Description         string          `json:"description"`
	AdditionalInfo      string          `json:"additional_info,omitempty"`
}

// Statement is one account-period document. Transactions keep document order.
type Statement struct {
	StatementID    string        `json:"statement_id"`
	Account        string        `json:"account"`
	SequenceNumber string        `json:"sequence_number,omitempty"`
	AccountHolder  string        `json:"account_holder,omitempty"`
	OpeningBalance *Balance      `json:"opening_balance,omitempty"`
	ClosingBalance *Balance      `json:"closing_balance,omitempty"`
	Transactions   []Transaction `json:"transactions"`
	Currency       string        `json:"currency"`
	CreationDate   *time.Time    `json:"creation_date,omitempty"`
	FromDate       *time.Time    `json:"from_date,omitempty"`
	ToDate         *time.Time    `json:"to_date,omitempty"`
}

// NewStatement returns a statement with every optional field absent.
func NewStatement(statementID, account, currency string) *Statement {
	return &Statement{
		StatementID:  statementID,
		Account:      account,
		Currency:     currency,
		Transactions: []Transaction{},
	}
}

// AddTransaction appends tx, keeping insertion order.
func (s *Statement) AddTransaction(tx Transaction) {
	s.Transactions = append(s.Transactions, tx)
}

// Clone returns a deep copy so a caller can rewrite fields without touching s.
func (s *Statement) Clone() *Statement {
	if s == nil {
		return nil
	}
	out := *s
	out.OpeningBalance = cloneBalance(s.OpeningBalance)
	out.ClosingBalance = cloneBalance(s.ClosingBalance)
	out.CreationDate = cloneTime(s.CreationDate)
	out.FromDate = cloneTime(s.FromDate)
	out.ToDate = cloneTime(s.ToDate)
	out.Transactions = make([]Transaction, len(s.Transactions))
	for i, tx := range s.Transactions {
		tx.ValueDate = cloneTime(tx.ValueDate)
		out.Transactions[i] = tx
	}
	return &out
}

func (t Transaction) IsDebit() bool  { return t.DebitCredit == Debit }
func (t Transaction) IsCredit() bool { return t.DebitCredit == Credit }

// EffectiveValueDate is the value date, or the booking date when none is set.
func (t Transaction) EffectiveValueDate() time.Time {
	if t.ValueDate != nil {
		return *t.ValueDate
	}
	return t.Date
}

func cloneBalance(b *Balance) *Balance {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
