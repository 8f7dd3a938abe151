package repositories

import (
	"context"
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// ReportingRepository defines read-only aggregation over committed journal
// data. Implementations must never write.
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit and credit totals for
	// every account with at least one line posted up to asOf, ordered by
	// account code ascending. NetBalance is left zero for the service to
	// derive against each account's normal side.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
