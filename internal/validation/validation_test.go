package validation_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"
	"fjacquet/stmtconv/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.mt940")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{name: "file", path: testFile},
		{name: "directory", path: tmpDir},
		{name: "missing", path: filepath.Join(tmpDir, "missing.xml"), errContains: "path does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidPath(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsValidDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "file.csv")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0600))

	assert.NoError(t, validation.IsValidDirectory(tmpDir))
	assert.ErrorContains(t, validation.IsValidDirectory(testFile), "is not a directory")
	assert.ErrorContains(t, validation.IsValidDirectory(filepath.Join(tmpDir, "nope")), "does not exist")
}

type stubValidator struct {
	ok  bool
	err error
}

func (s stubValidator) ValidateFormat(r io.Reader) (bool, error) {
	_, _ = io.ReadAll(r)
	return s.ok, s.err
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, validation.CheckFormat(stubValidator{ok: true}, []byte("x"), "in.xml", "camt053"))

	boom := errors.New("boom")
	assert.ErrorIs(t, validation.CheckFormat(stubValidator{err: boom}, nil, "in.xml", "camt053"), boom)

	long := strings.Repeat("a", 100)
	err := validation.CheckFormat(stubValidator{}, []byte("  "+long+"  "), "in.xml", "camt053")
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "in.xml", formatErr.FilePath)
	assert.Equal(t, "camt053", formatErr.ExpectedFormat)
	assert.Equal(t, strings.Repeat("a", 60)+"...", formatErr.ActualContentSnippet)
}

func validStatement() *models.Statement {
	stmt := models.NewStatement("S-1", "ACC", "EUR")
	stmt.OpeningBalance = &models.Balance{Amount: decimal.NewFromInt(1), DebitCredit: models.Credit, Date: dateutils.Date(2024, time.January, 1)}
	stmt.AddTransaction(models.Transaction{
		Reference: "R", Date: dateutils.Date(2024, time.January, 2), Amount: decimal.NewFromInt(5), DebitCredit: models.Debit,
	})
	return stmt
}

func TestValidateStatement(t *testing.T) {
	assert.NoError(t, validation.ValidateStatement(validStatement(), "in.mt940"))

	stmt := validStatement()
	stmt.StatementID = ""
	stmt.Currency = "EURO"
	stmt.OpeningBalance.DebitCredit = ""
	stmt.Transactions[0].Amount = decimal.NewFromInt(-5)
	stmt.Transactions[0].Date = time.Time{}

	err := validation.ValidateStatement(stmt, "in.mt940")
	var validationErr *parsererror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "in.mt940", validationErr.FilePath)
	assert.Equal(t, `statement id is empty; currency "EURO" is not a 3-letter code; `+
		`opening balance has no debit/credit indicator; transaction 1 has no date; transaction 1 amount is negative`,
		validationErr.Reason)
}

func TestValidateStatement_EmptyCurrencyAllowed(t *testing.T) {
	stmt := validStatement()
	stmt.Currency = ""
	assert.NoError(t, validation.ValidateStatement(stmt, ""))
}
