package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/stmtconv/internal/currencyutils"
	"fjacquet/stmtconv/internal/dateutils"
)

// SynthesizeReference builds the "{date}-{amount}" reference given to
// transactions whose source carries none, e.g. "2024-03-01-100.50".
func SynthesizeReference(date time.Time, amount decimal.Decimal) string {
	return fmt.Sprintf("%s-%s", date.Format(dateutils.DateLayoutISO), currencyutils.FormatPlain(amount))
}
