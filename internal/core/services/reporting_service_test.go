package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	mockJournalRepo   *MockJournalRepository
	service           portssvc.ReportingSvcFacade
	ctx               context.Context
	asOf              time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.service = services.NewReportingService(s.mockReportingRepo, s.mockAccountRepo, s.mockJournalRepo)
	s.ctx = context.Background()
	s.asOf = time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestTrialBalance_NetBalancesFollowNormalSide() {
	s.mockReportingRepo.On("GetTrialBalanceData", s.ctx, s.asOf).Return([]domain.TrialBalanceRow{
		{
			AccountCode: "1200-10-06",
			AccountName: "Client VAS Clearing",
			AccountType: domain.Asset,
			NormalSide:  domain.NormalDebit,
			DebitTotal:  decimal.NewFromInt(1500),
			CreditTotal: decimal.NewFromInt(400),
		},
		{
			AccountCode: "4100-01-06",
			AccountName: "VAS Fee Revenue",
			AccountType: domain.Revenue,
			NormalSide:  domain.NormalCredit,
			DebitTotal:  decimal.NewFromInt(400),
			CreditTotal: decimal.NewFromInt(1500),
		},
	}, nil).Once()

	rows, err := s.service.TrialBalance(s.ctx, s.asOf)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	// Debit-normal: debits minus credits. Credit-normal: credits minus debits.
	s.True(rows[0].NetBalance.Equal(decimal.NewFromInt(1100)))
	s.True(rows[1].NetBalance.Equal(decimal.NewFromInt(1100)))
}

func (s *ReportingServiceTestSuite) TestTrialBalance_EmptyLedger() {
	s.mockReportingRepo.On("GetTrialBalanceData", s.ctx, s.asOf).Return([]domain.TrialBalanceRow{}, nil).Once()

	rows, err := s.service.TrialBalance(s.ctx, s.asOf)

	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *ReportingServiceTestSuite) TestTrialBalance_ConservationAlarm() {
	// Grand debits != grand credits can only mean the posting engine or the
	// store is corrupt; the report must refuse to render.
	s.mockReportingRepo.On("GetTrialBalanceData", s.ctx, s.asOf).Return([]domain.TrialBalanceRow{
		{
			AccountCode: "1200-10-06",
			AccountType: domain.Asset,
			NormalSide:  domain.NormalDebit,
			DebitTotal:  decimal.NewFromInt(500),
			CreditTotal: decimal.Zero,
		},
		{
			AccountCode: "4100-01-06",
			AccountType: domain.Revenue,
			NormalSide:  domain.NormalCredit,
			DebitTotal:  decimal.Zero,
			CreditTotal: decimal.NewFromInt(400),
		},
	}, nil).Once()

	rows, err := s.service.TrialBalance(s.ctx, s.asOf)

	s.Require().Error(err)
	s.Nil(rows)

	var consistencyErr *apperrors.ConsistencyError
	s.Require().True(errors.As(err, &consistencyErr))
	s.True(consistencyErr.DebitTotal.Equal(decimal.NewFromInt(500)))
	s.True(consistencyErr.CreditTotal.Equal(decimal.NewFromInt(400)))
}

func (s *ReportingServiceTestSuite) TestListAccountLines() {
	account := &domain.Account{AccountID: "acc-clearing", Code: "1200-10-06", IsActive: true}
	lines := []domain.JournalLine{
		{LineID: "line-1", AccountID: "acc-clearing", Side: domain.Debit, Amount: decimal.NewFromInt(1000)},
	}
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, "1200-10-06").Return(account, nil).Once()
	s.mockJournalRepo.On("ListLinesByAccount", s.ctx, "acc-clearing", s.asOf, 50, (*string)(nil)).
		Return(lines, "bmV4dA", nil).Once()

	gotLines, nextToken, err := s.service.ListAccountLines(s.ctx, "1200-10-06", s.asOf, 50, nil)

	s.Require().NoError(err)
	s.Len(gotLines, 1)
	s.Require().NotNil(nextToken)
	s.Equal("bmV4dA", *nextToken)
}

func (s *ReportingServiceTestSuite) TestListAccountLines_ClampsLimit() {
	account := &domain.Account{AccountID: "acc-clearing", Code: "1200-10-06", IsActive: true}
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, "1200-10-06").Return(account, nil).Once()
	s.mockJournalRepo.On("ListLinesByAccount", s.ctx, "acc-clearing", s.asOf, 100, (*string)(nil)).
		Return([]domain.JournalLine{}, nil, nil).Once()

	_, nextToken, err := s.service.ListAccountLines(s.ctx, "1200-10-06", s.asOf, 5000, nil)

	s.Require().NoError(err)
	s.Nil(nextToken)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestListAccountLines_UnknownAccount() {
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, "0000-00-00").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := s.service.ListAccountLines(s.ctx, "0000-00-00", s.asOf, 50, nil)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.mockJournalRepo.AssertNotCalled(s.T(), "ListLinesByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
