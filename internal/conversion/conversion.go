// Package conversion holds the rules applied to a canonical statement when it
// moves between formats.
package conversion

import (
	"time"

	"fjacquet/stmtconv/internal/dateutils"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/textutils"
)

const (
	// DescriptionSeparator joins folded segments in a line-format description.
	DescriptionSeparator = " | "
	// CounterpartyLabel prefixes a folded counterparty name.
	CounterpartyLabel = "Counterparty: "
)

// Rules applies format-to-format conversion rules. Statements are never
// modified in place.
type Rules struct {
	logger logging.Logger
	now    func() time.Time
}

// NewRules creates Rules. now defaults to time.Now.
func NewRules(logger logging.Logger, now func() time.Time) *Rules {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if now == nil {
		now = time.Now
	}
	return &Rules{logger: logger, now: now}
}

// Apply returns the statement to serialize as to, given it was read as from.
func (r *Rules) Apply(stmt *models.Statement, from, to factory.Format) *models.Statement {
	switch {
	case from == to:
		return stmt.Clone()
	case to == factory.Structured:
		return r.ToStructured(stmt)
	case from == factory.Structured && to == factory.Line:
		return r.ToLine(stmt)
	}
	return stmt.Clone()
}

// ToStructured is the identity except that a missing creation date becomes
// today.
func (r *Rules) ToStructured(stmt *models.Statement) *models.Statement {
	out := stmt.Clone()
	if out.CreationDate == nil {
		out.CreationDate = dateutils.Ptr(dateutils.Truncate(r.now()))
		r.logger.Debug("Defaulted creation date",
			logging.F(logging.FieldStatementID, out.StatementID))
	}
	return out
}

// ToLine folds what the line format cannot carry into each description:
// additional info first, then the labelled counterparty name. Segments
// already present are not appended again, so applying ToLine twice changes
// nothing.
func (r *Rules) ToLine(stmt *models.Statement) *models.Statement {
	out := stmt.Clone()
	folded := 0
	for i := range out.Transactions {
		tx := &out.Transactions[i]
		before := tx.Description
		tx.Description = textutils.AppendSegment(tx.Description, DescriptionSeparator, tx.AdditionalInfo)
		if tx.CounterpartyName != "" {
			tx.Description = textutils.AppendSegment(tx.Description, DescriptionSeparator, CounterpartyLabel+tx.CounterpartyName)
		}
		if tx.Description != before {
			folded++
		}
	}
	if folded > 0 {
		r.logger.Debug("Folded enrichment into descriptions",
			logging.F(logging.FieldStatementID, out.StatementID),
			logging.F(logging.FieldCount, folded))
	}
	return out
}
