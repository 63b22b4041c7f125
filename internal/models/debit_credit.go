package models

import (
	"fmt"
	"strings"

	"fjacquet/stmtconv/internal/parsererror"
)

// ParseDebitCredit accepts the single-letter, ISO code and spelled-out forms,
// case-insensitively.
func ParseDebitCredit(s string) (DebitCredit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D", "DBIT", "DEBIT":
		return Debit, nil
	case "C", "CRDT", "CREDIT":
		return Credit, nil
	}
	return "", fmt.Errorf("%w: %q", parsererror.ErrInvalidIndicator, s)
}

// Letter renders the indicator as used by the line format.
func (dc DebitCredit) Letter() string {
	if dc == Credit {
		return "C"
	}
	return "D"
}

// ISOCode renders the indicator as used by the structured format.
func (dc DebitCredit) ISOCode() string {
	return string(dc)
}

func (dc DebitCredit) IsValid() bool {
	return dc == Debit || dc == Credit
}

func (dc DebitCredit) String() string {
	switch dc {
	case Debit:
		return "Debit"
	case Credit:
		return "Credit"
	}
	return "Unknown"
}
