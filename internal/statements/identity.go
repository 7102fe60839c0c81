package statements

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

// ErrIdentityMismatch is returned when total assets and total equity and
// liabilities differ by at least the tolerance.
var ErrIdentityMismatch = errors.New("assets do not equal equity and liabilities")

// Identity is the outcome of the accounting identity check.
type Identity struct {
	Holds      bool            `json:"holds" yaml:"holds"`
	Difference decimal.Decimal `json:"difference" yaml:"difference"`
	// ExplainedByProfit is set when the gap equals the profit for the year,
	// i.e. the period has not been closed to retained earnings.
	ExplainedByProfit bool `json:"explained_by_profit" yaml:"explained_by_profit"`
}

// CheckIdentity verifies TotalAssets == TotalEquityAndLiabilities within
// tolerance.
func CheckIdentity(pos model.FinancialPosition, tolerance decimal.Decimal) error {
	diff := pos.TotalAssets.Sub(pos.TotalEquityAndLiabilities)
	if diff.Abs().GreaterThanOrEqual(tolerance) {
		return fmt.Errorf("%w: difference %s", ErrIdentityMismatch, diff.StringFixed(2))
	}
	return nil
}

func identity(pos model.FinancialPosition, ci model.ComprehensiveIncome, tolerance decimal.Decimal) Identity {
	diff := pos.TotalAssets.Sub(pos.TotalEquityAndLiabilities)
	id := Identity{Difference: diff}
	if CheckIdentity(pos, tolerance) == nil {
		id.Holds = true
		return id
	}
	id.ExplainedByProfit = diff.Sub(ci.ProfitForYear).Abs().LessThan(tolerance)
	return id
}
