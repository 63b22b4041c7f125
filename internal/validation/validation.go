// Package validation checks inputs before and statements after parsing.
package validation

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
)

const snippetLength = 60

// IsValidPath checks that path exists and is a regular file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return nil
}

// IsValidDirectory checks that path exists and is a directory.
func IsValidDirectory(path string) error {
	if err := IsValidPath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", path)
	}
	return nil
}

// CheckFormat asks v whether data looks like expected. A mismatch is an
// InvalidFormatError carrying the start of the content.
func CheckFormat(v parser.FormatValidator, data []byte, path, expected string) error {
	ok, err := v.ValidateFormat(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return &parsererror.InvalidFormatError{
		FilePath:             path,
		ExpectedFormat:       expected,
		ActualContentSnippet: snippet(data),
		Msg:                  "content does not match the declared format",
	}
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if utf8.RuneCountInString(s) <= snippetLength {
		return s
	}
	return string([]rune(s)[:snippetLength]) + "..."
}

// ValidateStatement checks the model invariants every codec relies on and reports
// all violations at once.
func ValidateStatement(stmt *models.Statement, path string) error {
	var problems []string
	if stmt.StatementID == "" {
		problems = append(problems, "statement id is empty")
	}
	if stmt.Account == "" {
		problems = append(problems, "account is empty")
	}
	if stmt.Currency != "" && !currencyutils.IsValidCurrencyCode(stmt.Currency) {
		problems = append(problems, fmt.Sprintf("currency %q is not a 3-letter code", stmt.Currency))
	}
	problems = append(problems, balance("opening", stmt.OpeningBalance)...)
	problems = append(problems, balance("closing", stmt.ClosingBalance)...)

	for i, tx := range stmt.Transactions {
		n := i + 1
		if tx.Date.IsZero() {
			problems = append(problems, fmt.Sprintf("transaction %d has no date", n))
		}
		if tx.Amount.IsNegative() {
			problems = append(problems, fmt.Sprintf("transaction %d amount is negative", n))
		}
		if !tx.DebitCredit.IsValid() {
			problems = append(problems, fmt.Sprintf("transaction %d has no debit/credit indicator", n))
		}
		if tx.Reference == "" {
			problems = append(problems, fmt.Sprintf("transaction %d has no reference", n))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &parsererror.ValidationError{FilePath: path, Reason: strings.Join(problems, "; ")}
}

func balance(label string, b *models.Balance) []string {
	if b == nil {
		return nil
	}
	var problems []string
	if b.Amount.IsNegative() {
		problems = append(problems, label+" balance amount is negative")
	}
	if !b.DebitCredit.IsValid() {
		problems = append(problems, label+" balance has no debit/credit indicator")
	}
	if b.Date.IsZero() {
		problems = append(problems, label+" balance has no date")
	}
	return problems
}
