package accounting

import (
	"github.com/fynbospay/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumSides adds up the debit and credit legs of a prospective entry
// independently. Totals are never netted here so the caller can report the
// exact discrepancy when they differ.
func SumSides(lines []domain.JournalLine) (debitTotal, creditTotal decimal.Decimal) {
	debitTotal = decimal.Zero
	creditTotal = decimal.Zero
	for _, line := range lines {
		if line.Side == domain.Debit {
			debitTotal = debitTotal.Add(line.Amount)
		} else {
			creditTotal = creditTotal.Add(line.Amount)
		}
	}
	return debitTotal, creditTotal
}

// NetBalance computes an account's balance from its independent debit and
// credit totals, signed by the account's normal side: debit-normal accounts
// carry debit minus credit, credit-normal accounts the reverse.
func NetBalance(normalSide domain.NormalSide, debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	if normalSide == domain.NormalDebit {
		return debitTotal.Sub(creditTotal)
	}
	return creditTotal.Sub(debitTotal)
}

// IsValidAmount reports whether an amount is usable as a journal line
// amount: strictly positive and an exact whole number of minor units.
// Amounts are ZAR cents, so fractional values indicate caller-side rounding
// bugs and are rejected rather than rounded.
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.IsInteger()
}
