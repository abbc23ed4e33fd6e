package tax

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Deduction is a single relief claim as the engine sees it: a category
// code and a positive amount. Where the claim came from is not the
// engine's concern.
type Deduction struct {
	CategoryCode string
	Amount       decimal.Decimal
}

// CategoryBreakdown is the per-category result of aggregating a year's
// relief claims against the schedule.
type CategoryBreakdown struct {
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	Limit     decimal.NullDecimal `json:"limit" swaggertype:"number"`     // null for uncapped categories
	UserTotal decimal.Decimal     `json:"userTotal"`                      // sum of all claims in the category
	Claimable decimal.Decimal     `json:"claimable"`                      // the user total, capped at the limit
	Remaining decimal.NullDecimal `json:"remaining" swaggertype:"number"` // null for uncapped categories
	// Percentage of the limit that is used up. Exceeds 100 when the
	// category is over-claimed, 0 for uncapped categories.
	Percentage decimal.Decimal `json:"percentage"`
	// Amount claimed beyond the limit. Over-claiming is capped,
	// not rejected, and the excess is reported for warnings.
	Excess decimal.Decimal `json:"excess"`
}

// Aggregate sums the deductions per relief category and caps each
// category at its annual limit. Every category of the schedule appears in
// the result, including those without any claims.
//
// Categories with claims sort first, by descending user total. Ties and
// claim-less categories are ordered by code so that the output is
// reproducible.
func Aggregate(deductions []Deduction, categories []ReliefCategory) ([]CategoryBreakdown, error) {
	totals := make(map[string]decimal.Decimal, len(categories))
	for _, category := range categories {
		totals[category.Code] = decimal.Zero
	}

	for _, deduction := range deductions {
		if deduction.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrAmountNegative, deduction.CategoryCode)
		}

		total, ok := totals[deduction.CategoryCode]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCategoryUnknown, deduction.CategoryCode)
		}
		totals[deduction.CategoryCode] = total.Add(deduction.Amount)
	}

	breakdowns := make([]CategoryBreakdown, 0, len(categories))
	for _, category := range categories {
		userTotal := totals[category.Code]

		breakdown := CategoryBreakdown{
			Code:      category.Code,
			Name:      category.Name,
			Limit:     category.Limit,
			UserTotal: userTotal,
			Claimable: userTotal,
		}

		if category.Limit.Valid {
			limit := category.Limit.Decimal
			breakdown.Claimable = decimal.Min(userTotal, limit)
			breakdown.Remaining = decimal.NewNullDecimal(decimal.Max(decimal.Zero, limit.Sub(userTotal)))
			breakdown.Excess = decimal.Max(decimal.Zero, userTotal.Sub(limit))
			breakdown.Percentage = userTotal.Mul(hundred).DivRound(limit, 2)
		}

		breakdowns = append(breakdowns, breakdown)
	}

	slices.SortStableFunc(breakdowns, func(a, b CategoryBreakdown) int {
		aClaims, bClaims := a.UserTotal.IsPositive(), b.UserTotal.IsPositive()

		switch {
		case aClaims && !bClaims:
			return -1
		case !aClaims && bClaims:
			return 1
		case aClaims && !a.UserTotal.Equal(b.UserTotal):
			return b.UserTotal.Cmp(a.UserTotal)
		default:
			return strings.Compare(a.Code, b.Code)
		}
	})

	return breakdowns, nil
}
