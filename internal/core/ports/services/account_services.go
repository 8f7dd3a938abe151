package services

import (
	"context"

	"github.com/fynbospay/ledger/internal/core/domain"
	"github.com/fynbospay/ledger/internal/dto"
)

// AccountSvcFacade exposes the account registry operations to adapters and
// to the posting engine.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	GetAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	// DeactivateAccount is idempotent: deactivating an already-inactive
	// account is a no-op success.
	DeactivateAccount(ctx context.Context, code string, userID string) error
}
