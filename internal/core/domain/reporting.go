package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account's aggregates in a trial
// balance report. Debit and credit totals are summed independently, never
// netted during aggregation; NetBalance is computed against the account's
// normal side.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	NormalSide  NormalSide      `json:"normalSide"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}
