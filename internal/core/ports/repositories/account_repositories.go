package repositories

import (
	"context"
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// AccountRepository defines the persistence operations for the chart of
// accounts. The registry is the sole authority on valid posting targets.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, code string, userID string, now time.Time) error
}
