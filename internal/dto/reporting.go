package dto

import (
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// TrialBalanceRowResponse is one account's row in the trial balance report.
type TrialBalanceRowResponse struct {
	AccountCode           string             `json:"accountCode"`
	AccountName           string             `json:"accountName"`
	AccountType           domain.AccountType `json:"accountType"`
	NormalSide            domain.NormalSide  `json:"normalSide"`
	DebitTotalMinorUnits  int64              `json:"debitTotalMinorUnits"`
	CreditTotalMinorUnits int64              `json:"creditTotalMinorUnits"`
	NetBalanceMinorUnits  int64              `json:"netBalanceMinorUnits"`
}

// TrialBalanceResponse is the full report with its grand totals. The grand
// totals are always equal for a consistent ledger; the service refuses to
// produce a report when they are not.
type TrialBalanceResponse struct {
	AsOf                  time.Time                 `json:"asOf"`
	Rows                  []TrialBalanceRowResponse `json:"rows"`
	DebitTotalMinorUnits  int64                     `json:"debitTotalMinorUnits"`
	CreditTotalMinorUnits int64                     `json:"creditTotalMinorUnits"`
}

// ToTrialBalanceRowResponse converts a domain.TrialBalanceRow to its DTO.
func ToTrialBalanceRowResponse(row *domain.TrialBalanceRow) TrialBalanceRowResponse {
	return TrialBalanceRowResponse{
		AccountCode:           row.AccountCode,
		AccountName:           row.AccountName,
		AccountType:           row.AccountType,
		NormalSide:            row.NormalSide,
		DebitTotalMinorUnits:  row.DebitTotal.IntPart(),
		CreditTotalMinorUnits: row.CreditTotal.IntPart(),
		NetBalanceMinorUnits:  row.NetBalance.IntPart(),
	}
}
