package csvparser

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localizedExport = `Дата проводки,Счет Дебет,Счет Кредит,Сумма по дебету,Сумма по кредиту,№ документа,Назначение платежа,Банк (БИК и наименование)
20.02.2024,"40702810440000030888
7735602068
ООО РОМАШКА","40817810099910004312
7701234567
ИП Иванов","1 540,00",,15,"Оплата по счету 42
НДС не облагается","БИК 044525545 АО ЮниКредит Банк, г.Москва"
,,,,,,,
2024-02-21,30101810400000000225,40702810440000030888,,"10 000,50",,Возврат,BIC DEUTDEFF Deutsche Bank
21.02.2024,x,y,,,,no amount,
`

func newTestParser(opts Options) *CSVParser {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Unix(1700000000, 0) }
	}
	return NewCSVParser(logging.NewMockLogger(), opts)
}

func TestParse_LocalizedExport(t *testing.T) {
	stmt, err := newTestParser(Options{}).Parse(strings.NewReader(localizedExport))
	require.NoError(t, err)

	assert.Equal(t, "CSV-1700000000", stmt.StatementID)
	assert.Equal(t, "40702810440000030888", stmt.Account)
	assert.Equal(t, "RUB", stmt.Currency)
	assert.Nil(t, stmt.OpeningBalance)
	require.Len(t, stmt.Transactions, 2)

	debit := stmt.Transactions[0]
	assert.Equal(t, models.Debit, debit.DebitCredit)
	assert.Equal(t, dateutils.Date(2024, time.February, 20), debit.Date)
	assert.Equal(t, dateutils.Date(2024, time.February, 20), *debit.ValueDate)
	assert.True(t, decimal.RequireFromString("1540.00").Equal(debit.Amount))
	assert.Equal(t, "1540.00", currencyutils.FormatPlain(debit.Amount))
	assert.Equal(t, "RUB", debit.Currency)
	assert.Equal(t, "15", debit.Reference)
	assert.Equal(t, "40817810099910004312", debit.CounterpartyAccount)
	assert.Equal(t, "ИП Иванов", debit.CounterpartyName)
	assert.Equal(t, "044525545", debit.BankIdentifier)
	assert.Equal(t, "Оплата по счету 42\nНДС не облагается", debit.Description)

	credit := stmt.Transactions[1]
	assert.Equal(t, models.Credit, credit.DebitCredit)
	assert.True(t, decimal.RequireFromString("10000.50").Equal(credit.Amount))
	assert.Equal(t, "30101810400000000225", credit.CounterpartyAccount)
	assert.Equal(t, "Возврат", credit.CounterpartyName)
	assert.Equal(t, "DEUTDEFF", credit.BankIdentifier)
	assert.Equal(t, "2024-02-21-10000.50", credit.Reference)
}

func TestParse_EnglishHeadersAndDelimiter(t *testing.T) {
	input := "date;debit_account;credit_account;debit_amount;credit_amount;reference;description;bank\n" +
		"05.01.2024;;ACC-1;;12,5;R-1;Salary;Some Bank\n"

	stmt, err := newTestParser(Options{Delimiter: ';', DefaultCurrency: "EUR", IDPrefix: "EXP"}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "EXP-1700000000", stmt.StatementID)
	assert.Equal(t, "ACC-1", stmt.Account)
	assert.Equal(t, "EUR", stmt.Currency)
	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "Some Bank", stmt.Transactions[0].BankIdentifier)
	assert.Equal(t, "", stmt.Transactions[0].CounterpartyAccount)
	assert.Equal(t, "Salary", stmt.Transactions[0].CounterpartyName)
}

func TestParse_OwnAccountFromFirstPopulatedRow(t *testing.T) {
	input := "Date,Debit Account,Credit Account,Debit Amount,Credit Amount\n" +
		"01.01.2024,,,5,\n" +
		"02.01.2024,OWN-1,OTHER,6,\n" +
		"03.01.2024,OWN-2,OTHER,7,\n"

	stmt, err := newTestParser(Options{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "OWN-1", stmt.Account)
	assert.Len(t, stmt.Transactions, 3)
}

func TestParse_CounterpartyNameCountsBlankLines(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{name: "blank tax code line", cell: "CP\n\nName Co", want: "Name Co"},
		{name: "full cell", cell: "CP\n7701234567\nName Co", want: "Name Co"},
		{name: "two lines fall back to purpose", cell: "CP\nName Co", want: "Hello"},
		{name: "blank third line falls back to purpose", cell: "CP\n7701234567\n \nName Co", want: "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.WriteString("Date,Debit Account,Credit Account,Debit Amount,Purpose\n")
			buf.WriteString("01.01.2024,OWN,\"" + tt.cell + "\",5,Hello\n")

			stmt, err := newTestParser(Options{}).Parse(&buf)
			require.NoError(t, err)
			require.Len(t, stmt.Transactions, 1)
			assert.Equal(t, "CP", stmt.Transactions[0].CounterpartyAccount)
			assert.Equal(t, tt.want, stmt.Transactions[0].CounterpartyName)
		})
	}
}

func TestParse_NoAccountIsUnknown(t *testing.T) {
	stmt, err := newTestParser(Options{}).Parse(strings.NewReader("Date,Debit Amount\n01.01.2024,5\n"))
	require.NoError(t, err)
	assert.Equal(t, models.UnknownAccount, stmt.Account)
}

func TestParse_EmptyInput(t *testing.T) {
	stmt, err := newTestParser(Options{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, models.UnknownAccount, stmt.Account)
	assert.Empty(t, stmt.Transactions)
}

func TestParse_DateLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "20.02.2024", want: dateutils.Date(2024, time.February, 20)},
		{raw: "2024-02-20", want: dateutils.Date(2024, time.February, 20)},
		{raw: "03/02/2024", want: dateutils.Date(2024, time.February, 3)},
		{raw: "02/20/2024", want: dateutils.Date(2024, time.February, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			input := "Date,Credit Amount\n" + tt.raw + ",1\n"
			stmt, err := newTestParser(Options{}).Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, stmt.Transactions, 1)
			assert.Equal(t, tt.want, stmt.Transactions[0].Date)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		field   string
	}{
		{
			name:    "invalid date",
			input:   "Date,Debit Amount\n2024.02.20,1\n",
			wantErr: parsererror.ErrInvalidDate,
			field:   "Date (row 2)",
		},
		{
			name:    "invalid amount",
			input:   "Date,Debit Amount,Credit Amount\n20.02.2024,,\n21.02.2024,,1.2.3\n",
			wantErr: parsererror.ErrInvalidAmount,
			field:   "Credit Amount (row 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser(Options{}).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			var parseErr *parsererror.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.field, parseErr.Field)
		})
	}
}

func TestWrite_Layout(t *testing.T) {
	stmt := models.NewStatement("S-1", "OWN", "RUB")
	stmt.AddTransaction(models.Transaction{
		Reference: "1", Date: dateutils.Date(2024, time.March, 5), Amount: decimal.RequireFromString("10.50"),
		DebitCredit: models.Debit, CounterpartyAccount: "THEIRS", Description: "Rent, March", BankIdentifier: "044525545",
	})
	stmt.AddTransaction(models.Transaction{
		Reference: "2", Date: dateutils.Date(2024, time.March, 6), Amount: decimal.NewFromInt(3),
		DebitCredit: models.Credit, Description: "Refund",
	})

	var buf bytes.Buffer
	require.NoError(t, newTestParser(Options{}).Write(&buf, stmt))

	expected := "Date,Debit Account,Credit Account,Debit Amount,Credit Amount,Document No,Purpose,Bank\n" +
		"05.03.2024,OWN,THEIRS,10.50,,1,\"Rent, March\",044525545\n" +
		"06.03.2024,,OWN,,3,2,Refund,\n"
	assert.Equal(t, expected, buf.String())
}

func TestRoundTrip(t *testing.T) {
	original := models.NewStatement("S-1", "40702810440000030888", "RUB")
	original.AddTransaction(models.Transaction{
		Reference: "A1", Date: dateutils.Date(2024, time.January, 9), Amount: decimal.RequireFromString("1540.00"),
		DebitCredit: models.Debit, CounterpartyAccount: "40817810099910004312", Description: "Invoice 42",
	})
	original.AddTransaction(models.Transaction{
		Reference: "A2", Date: dateutils.Date(2024, time.January, 10), Amount: decimal.RequireFromString("0.99"),
		DebitCredit: models.Credit, CounterpartyAccount: "30101810400000000225", Description: "Cashback",
	})

	p := newTestParser(Options{Delimiter: ';'})
	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, original))
	parsed, err := p.Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Account, parsed.Account)
	require.Len(t, parsed.Transactions, len(original.Transactions))
	for i, want := range original.Transactions {
		got := parsed.Transactions[i]
		assert.Equal(t, want.Reference, got.Reference)
		assert.Equal(t, want.Date, got.Date)
		assert.Equal(t, want.Amount, got.Amount)
		assert.Equal(t, want.DebitCredit, got.DebitCredit)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.CounterpartyAccount, got.CounterpartyAccount)
	}
}

func TestValidateFormat(t *testing.T) {
	p := newTestParser(Options{})

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "localized header", input: localizedExport, want: true},
		{name: "english header", input: "Date,Credit Amount\n", want: true},
		{name: "no amount column", input: "Date,Purpose\n", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := p.ValidateFormat(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
