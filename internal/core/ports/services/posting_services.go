package services

import (
	"context"

	"github.com/fynbospay/ledger/internal/core/domain"
	"github.com/fynbospay/ledger/internal/dto"
)

// PostingSvcFacade is the single write path into the journal store. All
// mutating collaborators (settlement jobs, webhook receivers, templates)
// funnel through PostEntry.
type PostingSvcFacade interface {
	// PostEntry validates and atomically commits a balanced journal entry.
	// The returned bool is true when the request's reference matched an
	// already committed entry and that entry was returned unchanged.
	PostEntry(ctx context.Context, req dto.PostEntryRequest) (*domain.JournalEntry, bool, error)
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalLine, error)
}
