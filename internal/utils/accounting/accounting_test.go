package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fynbospay/ledger/internal/core/domain"
)

func TestSumSides(t *testing.T) {
	lines := []domain.JournalLine{
		{Side: domain.Debit, Amount: decimal.NewFromInt(1000)},
		{Side: domain.Credit, Amount: decimal.NewFromInt(600)},
		{Side: domain.Credit, Amount: decimal.NewFromInt(400)},
	}

	debitTotal, creditTotal := SumSides(lines)
	assert.True(t, debitTotal.Equal(decimal.NewFromInt(1000)), "debit total should be 1000")
	assert.True(t, creditTotal.Equal(decimal.NewFromInt(1000)), "credit total should be 1000")

	debitTotal, creditTotal = SumSides(nil)
	assert.True(t, debitTotal.IsZero())
	assert.True(t, creditTotal.IsZero())
}

func TestNetBalance(t *testing.T) {
	debit := decimal.NewFromInt(1500)
	credit := decimal.NewFromInt(400)

	// Debit-normal account: debit minus credit
	net := NetBalance(domain.NormalDebit, debit, credit)
	assert.True(t, net.Equal(decimal.NewFromInt(1100)))

	// Credit-normal account: credit minus debit
	net = NetBalance(domain.NormalCredit, debit, credit)
	assert.True(t, net.Equal(decimal.NewFromInt(-1100)))
}

func TestIsValidAmount(t *testing.T) {
	testCases := []struct {
		name   string
		amount decimal.Decimal
		want   bool
	}{
		{"positive integral cents", decimal.NewFromInt(1000), true},
		{"one cent", decimal.NewFromInt(1), true},
		{"zero rejected", decimal.Zero, false},
		{"negative rejected", decimal.NewFromInt(-5), false},
		{"fractional cents rejected", decimal.NewFromFloat(10.5), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidAmount(tc.amount))
		})
	}
}
