package services

import (
	"context"
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// ReportingSvcFacade exposes read-only derivations over committed journal
// data. Implementations never write.
type ReportingSvcFacade interface {
	// TrialBalance returns per-account debit/credit totals and net balances
	// as of a point in time, ordered by account code. It fails with
	// apperrors.ConsistencyError if the grand totals do not conserve.
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
	// ListAccountLines streams an account's posted lines up to asOf in
	// keyset-paginated windows, ordered by posted_at ascending.
	ListAccountLines(ctx context.Context, accountCode string, asOf time.Time, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}
