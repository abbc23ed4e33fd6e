package tax

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxResult is the outcome of a progressive tax computation.
type TaxResult struct {
	GrossTax      decimal.Decimal `json:"grossTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"` // percent, rounded to two decimal places
}

// ComputeTax applies the progressive brackets to the chargeable income.
// Each bracket's marginal rate only applies to the portion of the income
// that falls inside the bracket. A chargeable income of zero or below
// results in zero tax and a zero effective rate.
func ComputeTax(chargeableIncome decimal.Decimal, brackets []Bracket) TaxResult {
	if chargeableIncome.LessThanOrEqual(decimal.Zero) {
		return TaxResult{GrossTax: decimal.Zero, EffectiveRate: decimal.Zero}
	}

	var tax decimal.Decimal
	for _, bracket := range brackets {
		if chargeableIncome.LessThanOrEqual(bracket.Min) {
			break
		}

		upper := chargeableIncome
		if bracket.Max.Valid {
			upper = decimal.Min(chargeableIncome, bracket.Max.Decimal)
		}

		portion := upper.Sub(bracket.Min)
		if portion.GreaterThan(decimal.Zero) {
			tax = tax.Add(portion.Mul(bracket.Rate))
		}
	}

	return TaxResult{
		GrossTax:      tax,
		EffectiveRate: tax.Mul(hundred).DivRound(chargeableIncome, 2),
	}
}
