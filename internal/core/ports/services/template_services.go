package services

import (
	"context"

	"github.com/fynbospay/ledger/internal/core/domain"
	"github.com/fynbospay/ledger/internal/dto"
)

// TemplateSvcFacade composes multi-line entries for recurring business
// events and delegates them to the posting engine. Template arithmetic is
// verified before the engine is called; the engine's balance check is a
// second line of defence, not the place template bugs should surface.
type TemplateSvcFacade interface {
	PostVasPurchase(ctx context.Context, req dto.VasPurchaseRequest) (*domain.JournalEntry, bool, error)
	PostPayShapRtp(ctx context.Context, req dto.PayShapRtpRequest) (*domain.JournalEntry, bool, error)
}
