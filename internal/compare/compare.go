// Package compare reports the differences between two canonical statements,
// typically the same statement read from two formats.
package compare

import (
	"fmt"
	"strings"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/textutils"
)

// Statements lists the differences between a and b in a fixed order: the
// transaction count, then each index both sides share, then the balances.
// Transactions are matched by position.
func Statements(a, b *models.Statement) []string {
	var diffs []string

	if len(a.Transactions) != len(b.Transactions) {
		diffs = append(diffs, fmt.Sprintf("Number of transactions differs: %d vs %d",
			len(a.Transactions), len(b.Transactions)))
	}

	shared := min(len(a.Transactions), len(b.Transactions))
	for i := 0; i < shared; i++ {
		diffs = append(diffs, transactions(i+1, a.Transactions[i], b.Transactions[i])...)
	}

	diffs = append(diffs, balances("Opening", a.OpeningBalance, b.OpeningBalance)...)
	diffs = append(diffs, balances("Closing", a.ClosingBalance, b.ClosingBalance)...)
	return diffs
}

func transactions(n int, a, b models.Transaction) []string {
	var diffs []string
	if !a.Date.Equal(b.Date) {
		diffs = append(diffs, fmt.Sprintf("Transaction %d date differs: %s vs %s",
			n, a.Date.Format(dateutils.DateLayoutISO), b.Date.Format(dateutils.DateLayoutISO)))
	}
	if !a.Amount.Equal(b.Amount) {
		diffs = append(diffs, fmt.Sprintf("Transaction %d amount differs: %s vs %s",
			n, currencyutils.FormatPlain(a.Amount), currencyutils.FormatPlain(b.Amount)))
	}
	if a.DebitCredit != b.DebitCredit {
		diffs = append(diffs, fmt.Sprintf("Transaction %d type differs: %s vs %s", n, a.DebitCredit, b.DebitCredit))
	}

	// Cosmetic differences and a description missing on one side do not count.
	descA := textutils.NormalizeForComparison(a.Description)
	descB := textutils.NormalizeForComparison(b.Description)
	if descA != "" && descB != "" && descA != descB {
		diffs = append(diffs, fmt.Sprintf("Transaction %d description differs:\n    File 1: %s\n    File 2: %s",
			n, a.Description, b.Description))
	}
	return diffs
}

func balances(label string, a, b *models.Balance) []string {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return []string{fmt.Sprintf("%s balance present only in file 2", label)}
	case b == nil:
		return []string{fmt.Sprintf("%s balance present only in file 1", label)}
	}

	var diffs []string
	if !a.Amount.Equal(b.Amount) {
		diffs = append(diffs, fmt.Sprintf("%s balance differs: %s vs %s",
			label, currencyutils.FormatPlain(a.Amount), currencyutils.FormatPlain(b.Amount)))
	}
	if a.DebitCredit != b.DebitCredit {
		diffs = append(diffs, fmt.Sprintf("%s balance type differs: %s vs %s", label, a.DebitCredit, b.DebitCredit))
	}
	return diffs
}

// Report renders diffs for the terminal. name1 and name2 identify the two
// inputs in the no-difference message.
func Report(diffs []string, name1, name2 string) string {
	if len(diffs) == 0 {
		return fmt.Sprintf("The transaction records in '%s' and '%s' are identical.\n", name1, name2)
	}

	var sb strings.Builder
	sb.WriteString("Differences found:\n")
	for _, d := range diffs {
		sb.WriteString("  - ")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	return sb.String()
}
