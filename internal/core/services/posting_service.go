package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portsrepo "github.com/fynbospay/ledger/internal/core/ports/repositories"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
	"github.com/fynbospay/ledger/internal/utils/accounting"
)

var (
	// ErrEntryMinLines is returned when a posting request carries fewer than
	// two lines; a balanced entry needs at least one debit and one credit.
	ErrEntryMinLines = fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
)

// postingService validates and atomically commits balanced journal entries.
// It is the single write path into the journal store.
type postingService struct {
	accountSvc  portssvc.AccountSvcFacade
	journalRepo portsrepo.JournalRepository
}

// NewPostingService creates a new posting engine.
func NewPostingService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.AccountSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostEntry validates a posting request and commits it as one atomic unit.
// When the request carries a reference that has already been posted, the
// existing entry is returned unchanged with replayed=true — retried webhook
// deliveries from payment gateways must never double-post.
func (s *postingService) PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Idempotent replay, fast path.
	if req.Reference != nil && *req.Reference != "" {
		existing, err := s.journalRepo.FindEntryByReference(ctx, *req.Reference)
		if err == nil {
			logger.Info("Replayed existing journal entry", slog.String("reference", *req.Reference), slog.String("entry_id", existing.EntryID))
			return existing, true, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to check reference %s: %w", *req.Reference, err)
		}
	}

	if len(req.Lines) < 2 {
		return nil, false, ErrEntryMinLines
	}

	// Resolve every referenced account before touching amounts, so callers
	// get the most actionable error first.
	codes := make([]string, 0, len(req.Lines))
	seen := make(map[string]bool, len(req.Lines))
	for _, line := range req.Lines {
		if !seen[line.AccountCode] {
			seen[line.AccountCode] = true
			codes = append(codes, line.AccountCode)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByCodes(ctx, codes)
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, code := range codes {
		account, found := accounts[code]
		if !found {
			return nil, false, &apperrors.UnknownAccountError{Code: code}
		}
		if !account.IsActive {
			return nil, false, &apperrors.InactiveAccountError{Code: code}
		}
	}

	postedAt := time.Now().UTC()
	if req.PostedAt != nil {
		postedAt = req.PostedAt.UTC()
	}
	postedBy := req.PostedBy
	if postedBy == "" {
		postedBy = "system"
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		amount := decimal.NewFromInt(lineReq.AmountMinorUnits)
		if !accounting.IsValidAmount(amount) {
			return nil, false, &apperrors.NonPositiveAmountError{AccountCode: lineReq.AccountCode, Amount: amount}
		}
		if !lineReq.Side.IsValid() {
			return nil, false, fmt.Errorf("%w: unknown line side %q", apperrors.ErrValidation, lineReq.Side)
		}

		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: accounts[lineReq.AccountCode].AccountID,
			Side:      lineReq.Side,
			Amount:    amount,
			Memo:      lineReq.Memo,
			PostedAt:  postedAt,
			CreatedAt: now,
		}
	}

	// The core contract: debit total equals credit total, exactly.
	debitTotal, creditTotal := accounting.SumSides(lines)
	if !debitTotal.Equal(creditTotal) {
		return nil, false, &apperrors.UnbalancedEntryError{DebitTotal: debitTotal, CreditTotal: creditTotal}
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		Reference:   normalizeReference(req.Reference),
		Description: req.Description,
		PostedAt:    postedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     postedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: postedBy,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		// A concurrent delivery of the same event won the insert race. The
		// store's unique constraint on reference makes this safe: re-read
		// and hand back the winner's entry.
		if errors.Is(err, apperrors.ErrDuplicate) && entry.Reference != nil {
			winner, findErr := s.journalRepo.FindEntryByReference(ctx, *entry.Reference)
			if findErr != nil {
				return nil, false, fmt.Errorf("entry already posted but re-read failed: %w", findErr)
			}
			logger.Info("Lost posting race, replaying winner's entry", slog.String("reference", *entry.Reference), slog.String("entry_id", winner.EntryID))
			return winner, true, nil
		}
		logger.Error("Failed to commit journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("failed to commit journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.Int("lines", len(lines)),
		slog.String("debit_total", debitTotal.String()),
	)
	return &entry, false, nil
}

// GetEntry retrieves an entry with its lines.
func (s *postingService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	return entry, lines, nil
}

// normalizeReference maps empty references to nil so the store's
// nullable-unique index ignores entries posted without an idempotency key.
func normalizeReference(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}
