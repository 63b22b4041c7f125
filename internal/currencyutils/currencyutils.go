// Package currencyutils parses and renders decimal amounts in the spellings
// used by the statement formats.
package currencyutils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"fjacquet/stmtconv/internal/parsererror"
)

// ParseCommaAmount parses a line-format amount such as "1234,56" or "100,".
// Signs are rejected: the direction travels in the D/C indicator.
func ParseCommaAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	if raw == "" || strings.ContainsAny(raw, "+-") {
		return decimal.Zero, fmt.Errorf("%w: %q", parsererror.ErrInvalidAmount, s)
	}
	normalized := strings.TrimSuffix(strings.Replace(raw, ",", ".", 1), ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", parsererror.ErrInvalidAmount, s)
	}
	return amount, nil
}

// FormatCommaAmount renders an amount with a comma decimal separator. Whole
// amounts keep a trailing comma ("100,").
func FormatCommaAmount(amount decimal.Decimal) string {
	plain := FormatPlain(amount)
	if strings.Contains(plain, ".") {
		return strings.Replace(plain, ".", ",", 1)
	}
	return plain + ","
}

// FormatPlain renders an amount with a dot separator, keeping its scale so
// that "100.50" stays "100.50".
func FormatPlain(amount decimal.Decimal) string {
	places := -amount.Exponent()
	if places < 0 {
		places = 0
	}
	return amount.StringFixed(places)
}

// ParseSpacedAmount parses tabular amounts such as "1 540,00": every kind of
// whitespace is dropped and a comma becomes the decimal point.
func ParseSpacedAmount(s string) (decimal.Decimal, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ' ' || r == ' ' {
			return -1
		}
		return r
	}, s)
	compact = strings.ReplaceAll(compact, ",", ".")
	if compact == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", parsererror.ErrInvalidAmount, s)
	}
	amount, err := decimal.NewFromString(compact)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", parsererror.ErrInvalidAmount, s)
	}
	return amount, nil
}

// ParseDecimal parses a dot-separated amount as found in XML documents.
func ParseDecimal(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", parsererror.ErrInvalidAmount, s)
	}
	return amount, nil
}

// IsValidCurrencyCode reports whether code looks like an ISO 4217 code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
