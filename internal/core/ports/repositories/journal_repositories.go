package repositories

import (
	"context"
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// JournalRepository defines the persistence operations for journal entries
// and their lines. SaveEntry is the only write path and commits the entry
// with all of its lines atomically; it must be invoked exclusively by the
// posting engine so the balance invariant holds for every stored entry.
type JournalRepository interface {
	// SaveEntry persists the entry and its lines in a single transaction.
	// A uniqueness violation on the entry reference is reported as
	// apperrors.ErrDuplicate so the caller can take the idempotent-replay
	// path.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	// ListLinesByAccount returns lines posted against an account up to asOf,
	// ordered by posted_at ascending, in keyset-paginated windows. A fresh
	// call with a nil token re-scans from the start.
	ListLinesByAccount(ctx context.Context, accountID string, asOf time.Time, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}
