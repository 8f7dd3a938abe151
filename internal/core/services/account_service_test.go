package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/core/services"
	"github.com/fynbospay/ledger/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockRepo)
	s.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	s.mockRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code: "1200-10-06",
		Name: "Client VAS Clearing",
		Type: domain.Asset,
	})

	s.Require().NoError(err)
	s.Require().NotNil(account)
	s.Equal("1200-10-06", account.Code)
	s.Equal(domain.Asset, account.Type)
	// Normal side defaults to the conventional side for the type.
	s.Equal(domain.NormalDebit, account.NormalSide)
	s.True(account.IsActive)
	s.Equal("system", account.CreatedBy)
	s.NotEmpty(account.AccountID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateAccount_ContraNormalSide() {
	s.mockRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	// A debit-normal revenue account is unusual but well-formed; contra
	// accounts must be accepted.
	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:       "4900-01-01",
		Name:       "Revenue Contra",
		Type:       domain.Revenue,
		NormalSide: domain.NormalDebit,
		CreatedBy:  "finance-admin",
	})

	s.Require().NoError(err)
	s.Equal(domain.NormalDebit, account.NormalSide)
	s.Equal("finance-admin", account.CreatedBy)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	s.mockRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Return(&apperrors.DuplicateAccountCodeError{Code: "1200-10-06"}).Once()

	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code: "1200-10-06",
		Name: "Client VAS Clearing",
		Type: domain.Asset,
	})

	s.Require().Error(err)
	s.Nil(account)
	s.True(errors.Is(err, apperrors.ErrDuplicate))

	var dupErr *apperrors.DuplicateAccountCodeError
	s.Require().True(errors.As(err, &dupErr))
	s.Equal("1200-10-06", dupErr.Code)
}

func (s *AccountServiceTestSuite) TestCreateAccount_UnknownType() {
	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code: "9999",
		Name: "Bogus",
		Type: domain.AccountType("SUSPENSE"),
	})

	s.Require().Error(err)
	s.Nil(account)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_UnknownNormalSide() {
	account, err := s.service.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:       "1100-01-01",
		Name:       "Bank",
		Type:       domain.Asset,
		NormalSide: domain.NormalSide("SIDEWAYS"),
	})

	s.Require().Error(err)
	s.Nil(account)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	active := &domain.Account{AccountID: "acc-1", Code: "1200-10-06", Type: domain.Asset, NormalSide: domain.NormalDebit, IsActive: true}
	s.mockRepo.On("FindAccountByCode", s.ctx, "1200-10-06").Return(active, nil).Once()
	s.mockRepo.On("DeactivateAccount", s.ctx, "1200-10-06", "ops-user", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := s.service.DeactivateAccount(s.ctx, "1200-10-06", "ops-user")

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactiveIsNoOp() {
	inactive := &domain.Account{AccountID: "acc-1", Code: "1200-10-06", Type: domain.Asset, NormalSide: domain.NormalDebit, IsActive: false}
	s.mockRepo.On("FindAccountByCode", s.ctx, "1200-10-06").Return(inactive, nil).Once()

	err := s.service.DeactivateAccount(s.ctx, "1200-10-06", "ops-user")

	s.Require().NoError(err)
	s.mockRepo.AssertNotCalled(s.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	s.mockRepo.On("FindAccountByCode", s.ctx, "0000-00-00").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeactivateAccount(s.ctx, "0000-00-00", "ops-user")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *AccountServiceTestSuite) TestListAccounts_ClampsLimit() {
	s.mockRepo.On("ListAccounts", s.ctx, 100, 0).Return([]domain.Account{}, nil).Once()

	accounts, err := s.service.ListAccounts(s.ctx, 0, -5)

	s.Require().NoError(err)
	s.Empty(accounts)
	s.mockRepo.AssertExpectations(s.T())
}
