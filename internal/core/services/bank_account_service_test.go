package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerworks/voucher_disbursement_app/internal/apperrors"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BankAccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockBankAccountRepository
	mockCheckRepo   *MockCheckRepository
	service         portssvc.BankAccountSvcFacade

	companyID    string
	adminActor   domain.Actor
	liaisonActor domain.Actor
	staffActor   domain.Actor
}

func (suite *BankAccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockBankAccountRepository)
	suite.mockCheckRepo = new(MockCheckRepository)
	suite.service = services.NewBankAccountService(suite.mockAccountRepo, suite.mockCheckRepo)

	suite.companyID = uuid.NewString()
	suite.adminActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.liaisonActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleLiaison}
	suite.staffActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_Success() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		CompanyID:      suite.companyID,
		BankName:       "First National",
		AccountNumber:  "0123-4567-89",
		OpeningBalance: decimal.NewFromInt(10000),
	}

	suite.mockAccountRepo.On("SaveBankAccount", ctx, mock.MatchedBy(func(acc domain.BankAccount) bool {
		return acc.CompanyID == suite.companyID &&
			acc.OpeningBalance.Equal(decimal.NewFromInt(10000)) &&
			acc.CurrentBalance.Equal(decimal.NewFromInt(10000))
	})).Return(nil).Once()

	account, err := suite.service.CreateBankAccount(ctx, suite.adminActor, req)

	suite.NoError(err)
	suite.True(account.CurrentBalance.Equal(account.OpeningBalance))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_StaffForbidden() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{CompanyID: suite.companyID, BankName: "First National", AccountNumber: "0123"}

	account, err := suite.service.CreateBankAccount(ctx, suite.staffActor, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveBankAccount", mock.Anything, mock.Anything)
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_NegativeOpeningBalance() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		CompanyID:      suite.companyID,
		BankName:       "First National",
		AccountNumber:  "0123",
		OpeningBalance: decimal.NewFromInt(-1),
	}

	account, err := suite.service.CreateBankAccount(ctx, suite.liaisonActor, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
}

func (suite *BankAccountServiceTestSuite) TestGetBankAccount_DerivesUnclaimedBalance() {
	ctx := context.Background()
	bankAccountID := uuid.NewString()

	suite.mockAccountRepo.On("FindBankAccountByID", ctx, bankAccountID).
		Return(&domain.BankAccount{BankAccountID: bankAccountID, CurrentBalance: decimal.NewFromInt(10000)}, nil).Once()
	suite.mockCheckRepo.On("SumOutstanding", ctx, bankAccountID).
		Return(decimal.NewFromInt(3500), nil).Once()

	account, unclaimed, err := suite.service.GetBankAccount(ctx, bankAccountID)

	suite.NoError(err)
	suite.True(account.CurrentBalance.Equal(decimal.NewFromInt(10000)))
	suite.True(unclaimed.Equal(decimal.NewFromInt(3500)))
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *BankAccountServiceTestSuite) TestGetBankAccount_NotFound() {
	ctx := context.Background()
	bankAccountID := uuid.NewString()

	suite.mockAccountRepo.On("FindBankAccountByID", ctx, bankAccountID).
		Return(nil, apperrors.NewNotFoundError("bank account not found")).Once()

	account, _, err := suite.service.GetBankAccount(ctx, bankAccountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
	suite.mockCheckRepo.AssertNotCalled(suite.T(), "SumOutstanding", mock.Anything, mock.Anything)
}

func (suite *BankAccountServiceTestSuite) TestListBankAccounts_Success() {
	ctx := context.Background()
	firstID := uuid.NewString()
	secondID := uuid.NewString()

	suite.mockAccountRepo.On("ListBankAccountsByCompany", ctx, suite.companyID).
		Return([]domain.BankAccount{
			{BankAccountID: firstID, CompanyID: suite.companyID, CurrentBalance: decimal.NewFromInt(10000)},
			{BankAccountID: secondID, CompanyID: suite.companyID, CurrentBalance: decimal.NewFromInt(250)},
		}, nil).Once()
	suite.mockCheckRepo.On("SumOutstanding", ctx, firstID).Return(decimal.NewFromInt(3500), nil).Once()
	suite.mockCheckRepo.On("SumOutstanding", ctx, secondID).Return(decimal.Zero, nil).Once()

	accounts, err := suite.service.ListBankAccounts(ctx, suite.companyID)

	suite.NoError(err)
	suite.Len(accounts, 2)
	suite.True(accounts[0].UnclaimedBalance.Equal(decimal.NewFromInt(3500)))
	suite.True(accounts[1].UnclaimedBalance.Equal(decimal.Zero))
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func TestBankAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankAccountServiceTestSuite))
}
