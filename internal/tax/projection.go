package tax

import (
	"fmt"
	"time"

	"github.com/kiracukai/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Frequency is how often a commitment payment is due.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOneTime   Frequency = "one_time"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime:
		return true
	}

	return false
}

// periodMonths returns the number of calendar months one payment period
// spans. One-time commitments have a single period.
func (f Frequency) periodMonths() int {
	switch f {
	case FrequencyQuarterly:
		return 3
	case FrequencyYearly:
		return 12
	default:
		return 1
	}
}

// Projection is the payment progress of a commitment at a point in time.
// It is recomputed on every read and never stored.
type Projection struct {
	MonthsElapsed int             `json:"monthsElapsed"`
	TotalExpected int             `json:"totalExpected"`
	PaymentsMade  int             `json:"paymentsMade"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
}

// monthsElapsed counts the whole calendar months between the start date
// and asOf, plus one for the current month once asOf has reached the
// start date. Days of the month play no further role.
func monthsElapsed(startDate, asOf time.Time) int {
	months := (asOf.Year()-startDate.Year())*12 + int(asOf.Month()) - int(startDate.Month())
	if !asOf.Before(startDate) {
		months++
	}

	if months < 0 {
		return 0
	}

	return months
}

// expectedPayments returns how many payments are due after the given
// number of elapsed months.
func expectedPayments(frequency Frequency, monthsElapsed int) int {
	switch frequency {
	case FrequencyMonthly:
		return monthsElapsed
	case FrequencyQuarterly:
		return monthsElapsed / 3
	case FrequencyYearly:
		return monthsElapsed / 12
	case FrequencyOneTime:
		return 1
	}

	return 0
}

// CurrentPeriod returns the month in which the payment for the period
// containing asOf is due. The second return value is false when no
// payment is due yet.
func CurrentPeriod(frequency Frequency, startDate, asOf time.Time) (types.Month, bool) {
	if !frequency.Valid() {
		return types.Month{}, false
	}

	expected := expectedPayments(frequency, monthsElapsed(startDate, asOf))
	if expected == 0 {
		return types.Month{}, false
	}

	return types.MonthOf(startDate).AddDate(0, (expected-1)*frequency.periodMonths()), true
}

// ProjectPayments computes the payment progress of a commitment.
//
// All periods before the current one are assumed to have been paid; only
// the current period's status is taken from the paid flag. This is a
// deliberate simplification, not a ledger reconciliation.
func ProjectPayments(frequency Frequency, amount decimal.Decimal, startDate, asOf time.Time, currentPeriodPaid bool) (Projection, error) {
	if !frequency.Valid() {
		return Projection{}, fmt.Errorf("%w: %q", ErrFrequencyInvalid, frequency)
	}

	if amount.IsNegative() {
		return Projection{}, ErrAmountNegative
	}

	elapsed := monthsElapsed(startDate, asOf)
	expected := expectedPayments(frequency, elapsed)

	made := expected
	if !currentPeriodPaid {
		made = expected - 1
		if made < 0 {
			made = 0
		}
	}

	return Projection{
		MonthsElapsed: elapsed,
		TotalExpected: expected,
		PaymentsMade:  made,
		TotalPaid:     amount.Mul(decimal.NewFromInt(int64(made))),
	}, nil
}
