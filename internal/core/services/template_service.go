package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
	"github.com/fynbospay/ledger/internal/platform/config"
)

// templateService composes balanced line sets for recurring settlement
// events and delegates them to the posting engine. The account codes each
// template posts against come from configuration, not from the caller.
type templateService struct {
	accounts   config.TemplateAccounts
	postingSvc portssvc.PostingSvcFacade
}

// NewTemplateService creates a new posting template service.
func NewTemplateService(accounts config.TemplateAccounts, postingSvc portssvc.PostingSvcFacade) portssvc.TemplateSvcFacade {
	return &templateService{
		accounts:   accounts,
		postingSvc: postingSvc,
	}
}

// Ensure templateService implements the portssvc.TemplateSvcFacade interface
var _ portssvc.TemplateSvcFacade = (*templateService)(nil)

// BuildVasPurchaseLines composes the recognition legs for a VAS purchase
// settlement: debit client clearing for the gross, credit supplier float for
// the cost, credit fee revenue for the markup, credit VAT control for VAT on
// the fee. It fails before the posting engine is ever called when the
// caller's split does not reconcile, naming the inconsistent leg.
func (s *templateService) BuildVasPurchaseLines(req dto.VasPurchaseRequest) ([]dto.PostLineRequest, error) {
	gross := decimal.NewFromInt(req.GrossMinorUnits)
	cost := decimal.NewFromInt(req.CostMinorUnits)
	fee := decimal.NewFromInt(req.FeeMinorUnits)
	vat := decimal.NewFromInt(req.VatOnFeeMinorUnits)

	expectedGross := cost.Add(fee).Add(vat)
	if !gross.Equal(expectedGross) {
		return nil, &apperrors.TemplateArithmeticError{
			Template: "VAS purchase settlement",
			Leg:      "gross",
			Expected: expectedGross,
			Actual:   gross,
		}
	}

	lines := []dto.PostLineRequest{
		{AccountCode: s.accounts.VasClientClearing, Side: domain.Debit, AmountMinorUnits: req.GrossMinorUnits, Memo: "VAS purchase gross"},
		{AccountCode: s.accounts.VasSupplierFloat, Side: domain.Credit, AmountMinorUnits: req.CostMinorUnits, Memo: "supplier cost"},
	}
	// Zero legs are omitted rather than posted: the engine rejects
	// zero-amount lines.
	if req.FeeMinorUnits > 0 {
		lines = append(lines, dto.PostLineRequest{AccountCode: s.accounts.VasFeeRevenue, Side: domain.Credit, AmountMinorUnits: req.FeeMinorUnits, Memo: "fee ex-VAT"})
	}
	if req.VatOnFeeMinorUnits > 0 {
		lines = append(lines, dto.PostLineRequest{AccountCode: s.accounts.VasVatControl, Side: domain.Credit, AmountMinorUnits: req.VatOnFeeMinorUnits, Memo: "VAT on fee"})
	}
	return lines, nil
}

// PostVasPurchase builds the VAS purchase legs and posts them with the
// event reference as idempotency key.
func (s *templateService) PostVasPurchase(ctx context.Context, req dto.VasPurchaseRequest) (*domain.JournalEntry, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.BuildVasPurchaseLines(req)
	if err != nil {
		logger.Warn("VAS purchase template arithmetic rejected", slog.String("reference", req.Reference), slog.String("error", err.Error()))
		return nil, false, err
	}

	description := req.Description
	if description == "" {
		description = "VAS purchase settlement"
	}

	reference := req.Reference
	return s.postingSvc.PostEntry(ctx, dto.PostEntryRequest{
		Reference:   &reference,
		Description: description,
		PostedAt:    req.PostedAt,
		PostedBy:    req.PostedBy,
		Lines:       lines,
	})
}

// BuildPayShapRtpLines composes the legs for a PayShap RTP "paid" callback:
// debit bank clearing for the principal inflow, credit the client float for
// the net amount credited to the payer's wallet, credit the scheme-fee cost
// account for the banking partner's fee.
func (s *templateService) BuildPayShapRtpLines(req dto.PayShapRtpRequest) ([]dto.PostLineRequest, error) {
	principal := decimal.NewFromInt(req.PrincipalMinorUnits)
	net := decimal.NewFromInt(req.NetMinorUnits)
	schemeFee := decimal.NewFromInt(req.SchemeFeeMinorUnits)

	expectedPrincipal := net.Add(schemeFee)
	if !principal.Equal(expectedPrincipal) {
		return nil, &apperrors.TemplateArithmeticError{
			Template: "PayShap RTP settlement",
			Leg:      "principal",
			Expected: expectedPrincipal,
			Actual:   principal,
		}
	}

	lines := []dto.PostLineRequest{
		{AccountCode: s.accounts.PayShapBankClearing, Side: domain.Debit, AmountMinorUnits: req.PrincipalMinorUnits, Memo: "PayShap RTP principal"},
		{AccountCode: s.accounts.PayShapClientFloat, Side: domain.Credit, AmountMinorUnits: req.NetMinorUnits, Memo: "client wallet credit"},
	}
	if req.SchemeFeeMinorUnits > 0 {
		lines = append(lines, dto.PostLineRequest{AccountCode: s.accounts.PayShapSchemeFee, Side: domain.Credit, AmountMinorUnits: req.SchemeFeeMinorUnits, Memo: "scheme fee"})
	}
	return lines, nil
}

// PostPayShapRtp builds the PayShap RTP legs and posts them with the event
// reference as idempotency key, so duplicate callback deliveries replay.
func (s *templateService) PostPayShapRtp(ctx context.Context, req dto.PayShapRtpRequest) (*domain.JournalEntry, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.BuildPayShapRtpLines(req)
	if err != nil {
		logger.Warn("PayShap RTP template arithmetic rejected", slog.String("reference", req.Reference), slog.String("error", err.Error()))
		return nil, false, err
	}

	description := req.Description
	if description == "" {
		description = "PayShap RTP settlement"
	}

	reference := req.Reference
	return s.postingSvc.PostEntry(ctx, dto.PostEntryRequest{
		Reference:   &reference,
		Description: description,
		PostedAt:    req.PostedAt,
		PostedBy:    req.PostedBy,
		Lines:       lines,
	})
}
