package ratios

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/lineitem"
	"github.com/cleared-dev/statements/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertRatio(t *testing.T, r Ratios, name, want string) {
	t.Helper()
	got, ok := r.Get(name)
	require.True(t, ok, "ratio %s missing", name)
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", name, want, got)
}

func TestCompute_CurrentRatio(t *testing.T) {
	pos := model.FinancialPosition{
		CurrentAssets:      model.Section{Total: dec("200")},
		CurrentLiabilities: model.Section{Total: dec("100")},
	}
	r := Compute(pos, model.ComprehensiveIncome{})
	assertRatio(t, r, CurrentRatio, "2.0")
}

func TestCompute_ZeroCurrentLiabilitiesOmitsKey(t *testing.T) {
	pos := model.FinancialPosition{
		CurrentAssets:      model.Section{Total: dec("200")},
		CurrentLiabilities: model.Section{Total: decimal.Zero},
	}
	r := Compute(pos, model.ComprehensiveIncome{})

	_, ok := r[CurrentRatio]
	assert.False(t, ok)
	_, ok = r[QuickRatio]
	assert.False(t, ok)
}

func TestCompute_AllRatios(t *testing.T) {
	pos := model.FinancialPosition{
		CurrentAssets: model.Section{
			Lines: map[string]decimal.Decimal{lineitem.Cash: dec("150"), lineitem.Inventories: dec("50")},
			Total: dec("200"),
		},
		NonCurrentAssets:          model.Section{Total: dec("800")},
		Equity:                    model.Section{Total: dec("600")},
		CurrentLiabilities:        model.Section{Total: dec("100")},
		NonCurrentLiabilities:     model.Section{Total: dec("300")},
		TotalAssets:               dec("1000"),
		TotalEquityAndLiabilities: dec("1000"),
	}
	ci := model.ComprehensiveIncome{
		Revenue:       dec("1000"),
		GrossProfit:   dec("400"),
		ProfitForYear: dec("150"),
	}

	r := Compute(pos, ci)
	assert.Len(t, r, 7)
	assertRatio(t, r, CurrentRatio, "2")
	assertRatio(t, r, QuickRatio, "1.5")
	assertRatio(t, r, GrossProfitMargin, "0.4")
	assertRatio(t, r, NetProfitMargin, "0.15")
	assertRatio(t, r, ReturnOnAssets, "0.15")
	assertRatio(t, r, ReturnOnEquity, "0.25")
	assertRatio(t, r, DebtToEquityRatio, "0.6667")
}

func TestCompute_NegativeDenominatorsOmitted(t *testing.T) {
	pos := model.FinancialPosition{
		CurrentLiabilities: model.Section{Total: dec("-10")},
		Equity:             model.Section{Total: dec("-5")},
		TotalAssets:        dec("-1"),
	}
	ci := model.ComprehensiveIncome{Revenue: dec("-100")}

	assert.Empty(t, Compute(pos, ci))
}

func TestCompute_NoRevenue(t *testing.T) {
	pos := model.FinancialPosition{
		Equity:      model.Section{Total: dec("100")},
		TotalAssets: dec("100"),
	}
	ci := model.ComprehensiveIncome{ProfitForYear: dec("-20")}

	r := Compute(pos, ci)
	assert.Equal(t, []string{DebtToEquityRatio, ReturnOnAssets, ReturnOnEquity}, r.Names())
	assertRatio(t, r, ReturnOnAssets, "-0.2")
	assertRatio(t, r, DebtToEquityRatio, "0")
}
