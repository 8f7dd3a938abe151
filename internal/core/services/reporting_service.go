package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portsrepo "github.com/fynbospay/ledger/internal/core/ports/repositories"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/middleware"
	"github.com/fynbospay/ledger/internal/utils/accounting"
)

// reportingService derives read-only reports from committed journal data.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepository
	journalRepo   portsrepo.JournalRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		journalRepo:   journalRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance generates the trial balance as of a point in time. The grand
// debit and credit totals must conserve for every reachable store state; a
// mismatch means the posting engine itself is broken, so it surfaces as a
// ConsistencyError rather than being tolerated in the report.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		logger.Error("Failed to retrieve trial balance data",
			slog.String("asOf", asOf.Format(time.RFC3339)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	grandDebit := decimal.Zero
	grandCredit := decimal.Zero
	for i := range rows {
		rows[i].NetBalance = accounting.NetBalance(rows[i].NormalSide, rows[i].DebitTotal, rows[i].CreditTotal)
		grandDebit = grandDebit.Add(rows[i].DebitTotal)
		grandCredit = grandCredit.Add(rows[i].CreditTotal)
	}

	if !grandDebit.Equal(grandCredit) {
		consistencyErr := &apperrors.ConsistencyError{DebitTotal: grandDebit, CreditTotal: grandCredit}
		logger.Error("FATAL: trial balance does not conserve, posting engine defect suspected",
			slog.String("debit_total", grandDebit.String()),
			slog.String("credit_total", grandCredit.String()),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, consistencyErr
	}

	logger.Info("Trial balance generated",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ListAccountLines streams an account's posted lines up to asOf in
// keyset-paginated windows. A fresh call with a nil token re-scans.
func (s *reportingService) ListAccountLines(ctx context.Context, accountCode string, asOf time.Time, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.journalRepo.ListLinesByAccount(ctx, account.AccountID, asOf, limit, nextToken)
}
