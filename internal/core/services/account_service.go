package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portsrepo "github.com/fynbospay/ledger/internal/core/ports/repositories"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
)

// accountService owns the chart of accounts: it is the sole authority on
// which account codes are valid posting targets.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account registry service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount registers a new account. Only unknown enum values are
// rejected: unusual but well-formed type/side combinations are allowed,
// because contra accounts are a legitimate part of this chart.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Code == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}

	normalSide := req.NormalSide
	if normalSide == "" {
		normalSide = domain.DefaultNormalSide(req.Type)
	} else if !normalSide.IsValid() {
		return nil, fmt.Errorf("%w: unknown normal side %q", apperrors.ErrValidation, req.NormalSide)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:  uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Type:       req.Type,
		NormalSide: normalSide,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate account code rejected", slog.String("code", req.Code))
			return nil, err
		}
		logger.Error("Failed to save account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("code", account.Code), slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByCode retrieves an account by its unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

// GetAccountsByCodes retrieves multiple accounts keyed by code. Missing
// codes are absent from the map; the caller decides whether that is an error.
func (s *accountService) GetAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByCodes(ctx, codes)
}

// ListAccounts returns accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// DeactivateAccount marks an account inactive. Deactivating an account that
// is already inactive is a no-op success, not an error.
func (s *accountService) DeactivateAccount(ctx context.Context, code string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return err
	}
	if !account.IsActive {
		logger.Info("Account already inactive, nothing to do", slog.String("code", code))
		return nil
	}

	if userID == "" {
		userID = "system"
	}
	if err := s.accountRepo.DeactivateAccount(ctx, code, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("code", code), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Account deactivated", slog.String("code", code))
	return nil
}
