package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
	portsrepo "github.com/fynbospay/ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData retrieves per-account debit and credit totals up to
// asOf. Debits and credits are summed independently in SQL, never netted,
// so the report stays auditable; aggregation memory is bounded per account.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.account_type,
			a.normal_side,
			SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN l.side = 'CREDIT' THEN l.amount ELSE 0 END) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.posted_at <= $1
		GROUP BY a.code, a.name, a.account_type, a.normal_side
		ORDER BY a.code ASC
	`

	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType, normalSide string

		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&normalSide,
			&row.DebitTotal,
			&row.CreditTotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		row.NormalSide = domain.NormalSide(normalSide)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.TrialBalanceRow{}, nil
	}

	return result, nil
}
