package tax

import (
	"github.com/shopspring/decimal"
)

type SettlementStatus string

const (
	StatusRefund   SettlementStatus = "refund"
	StatusOwed     SettlementStatus = "owed"
	StatusBalanced SettlementStatus = "balanced"
)

// Settlement is the outcome of comparing the net tax payable with the
// PCB amounts already withheld over the year.
type Settlement struct {
	Status SettlementStatus `json:"status"`
	Amount decimal.Decimal  `json:"amount"`
}

// Settle determines whether the year ends in a refund, an amount owed or
// balanced. Both figures are rounded to the sen before the comparison so
// that sub-sen precision noise cannot flip the status.
func Settle(netTaxPayable, totalPcbPaid decimal.Decimal) Settlement {
	difference := totalPcbPaid.Round(2).Sub(netTaxPayable.Round(2))

	switch {
	case difference.IsPositive():
		return Settlement{Status: StatusRefund, Amount: difference}
	case difference.IsNegative():
		return Settlement{Status: StatusOwed, Amount: difference.Neg()}
	default:
		return Settlement{Status: StatusBalanced, Amount: decimal.Zero}
	}
}
