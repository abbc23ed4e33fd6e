// Package tax implements the LHDN relief and tax calculation engine: relief
// aggregation against category limits, progressive tax on chargeable income,
// the refund or owed settlement against PCB withholding and commitment
// payment projection.
//
// The engine is pure computation. It performs no I/O, holds no state and
// receives the tax schedule for the Year of Assessment explicitly.
package tax

import (
	"github.com/shopspring/decimal"
)

// CalculationInput is a fully materialized snapshot of one profile's
// figures for a year. The caller is responsible for fetching it.
type CalculationInput struct {
	GrossIncome  decimal.Decimal
	Deductions   []Deduction
	TotalPcbPaid decimal.Decimal
}

// Calculation is the complete tax picture for one profile and year.
type Calculation struct {
	Year             int                 `json:"year"`
	GrossIncome      decimal.Decimal     `json:"grossIncome"`
	TotalClaimable   decimal.Decimal     `json:"totalClaimable"`
	ChargeableIncome decimal.Decimal     `json:"chargeableIncome"`
	GrossTax         decimal.Decimal     `json:"grossTax"` // tax on the gross income with zero relief
	NetTaxPayable    decimal.Decimal     `json:"netTaxPayable"`
	EffectiveRate    decimal.Decimal     `json:"effectiveRate"` // of the net tax on the chargeable income
	TaxSavings       decimal.Decimal     `json:"taxSavings"`
	TotalPcbPaid     decimal.Decimal     `json:"totalPcbPaid"`
	Settlement       Settlement          `json:"settlement"`
	Reliefs          []CategoryBreakdown `json:"reliefs"`
}

// Calculator computes tax calculations for the Year of Assessment of its
// schedule.
type Calculator struct {
	Schedule Schedule
}

// NewCalculator returns a calculator for the schedule. The schedule is
// validated.
func NewCalculator(schedule Schedule) (Calculator, error) {
	if err := schedule.Validate(); err != nil {
		return Calculator{}, err
	}

	return Calculator{Schedule: schedule}, nil
}

// Calculate runs the full calculation cycle: aggregate the relief claims,
// compute the tax with and without relief and settle against the PCB
// amounts withheld.
func (c Calculator) Calculate(input CalculationInput) (Calculation, error) {
	if input.GrossIncome.IsNegative() || input.TotalPcbPaid.IsNegative() {
		return Calculation{}, ErrAmountNegative
	}

	reliefs, err := Aggregate(input.Deductions, c.Schedule.Categories)
	if err != nil {
		return Calculation{}, err
	}

	totalClaimable := decimal.Zero
	for _, breakdown := range reliefs {
		totalClaimable = totalClaimable.Add(breakdown.Claimable)
	}

	chargeableIncome := decimal.Max(decimal.Zero, input.GrossIncome.Sub(totalClaimable))

	withoutRelief := ComputeTax(input.GrossIncome, c.Schedule.Brackets)
	withRelief := ComputeTax(chargeableIncome, c.Schedule.Brackets)

	taxSavings := withoutRelief.GrossTax.Sub(withRelief.GrossTax)
	if taxSavings.IsNegative() {
		taxSavings = decimal.Zero
	}

	return Calculation{
		Year:             c.Schedule.Year,
		GrossIncome:      input.GrossIncome,
		TotalClaimable:   totalClaimable,
		ChargeableIncome: chargeableIncome,
		GrossTax:         withoutRelief.GrossTax,
		NetTaxPayable:    withRelief.GrossTax,
		EffectiveRate:    withRelief.EffectiveRate,
		TaxSavings:       taxSavings,
		TotalPcbPaid:     input.TotalPcbPaid,
		Settlement:       Settle(withRelief.GrossTax, input.TotalPcbPaid),
		Reliefs:          reliefs,
	}, nil
}
