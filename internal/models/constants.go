package models

// DebitCredit marks a movement as outgoing (Debit) or incoming (Credit).
// Values are the ISO 20022 codes; each format renders its own spelling.
type DebitCredit string

const (
	Debit  DebitCredit = "DBIT"
	Credit DebitCredit = "CRDT"
)

// BalanceType classifies a statement balance.
type BalanceType string

const (
	BalanceOpening          BalanceType = "Opening"
	BalanceClosing          BalanceType = "Closing"
	BalanceIntermediate     BalanceType = "Intermediate"
	BalanceForwardAvailable BalanceType = "ForwardAvailable"
)

// Placeholder used when a source document carries no account identifier.
const UnknownAccount = "UNKNOWN"

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
