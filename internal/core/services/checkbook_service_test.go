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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckbookServiceTestSuite struct {
	suite.Suite
	mockCheckbookRepo *MockCheckbookRepository
	mockAccountRepo   *MockBankAccountRepository
	service           portssvc.CheckbookSvcFacade

	bankAccountID string
	adminActor    domain.Actor
	liaisonActor  domain.Actor
}

func (suite *CheckbookServiceTestSuite) SetupTest() {
	suite.mockCheckbookRepo = new(MockCheckbookRepository)
	suite.mockAccountRepo = new(MockBankAccountRepository)
	suite.service = services.NewCheckbookService(suite.mockCheckbookRepo, suite.mockAccountRepo)

	suite.bankAccountID = uuid.NewString()
	suite.adminActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.liaisonActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleLiaison}
}

func (suite *CheckbookServiceTestSuite) TestAllocateCheckbook_Success() {
	ctx := context.Background()
	req := dto.AllocateCheckbookRequest{SeriesStart: 1001, SeriesEnd: 1050}

	suite.mockAccountRepo.On("FindBankAccountByID", ctx, suite.bankAccountID).
		Return(&domain.BankAccount{BankAccountID: suite.bankAccountID}, nil).Once()
	suite.mockCheckbookRepo.On("FindActiveCheckbook", ctx, suite.bankAccountID).
		Return(nil, apperrors.ErrNoActiveCheckbook).Once()
	suite.mockCheckbookRepo.On("HasOverlappingSeries", ctx, suite.bankAccountID, int64(1001), int64(1050)).
		Return(false, nil).Once()
	suite.mockCheckbookRepo.On("SaveCheckbook", ctx, mock.AnythingOfType("domain.Checkbook")).
		Return(nil).Once()

	checkbook, err := suite.service.AllocateCheckbook(ctx, suite.adminActor, suite.bankAccountID, req)

	suite.NoError(err)
	suite.NotNil(checkbook)
	suite.Equal(domain.CheckbookActive, checkbook.Status)
	suite.Equal(int64(1001), checkbook.NextCheckNo)
	suite.Equal(int64(50), checkbook.Remaining())
	suite.mockCheckbookRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *CheckbookServiceTestSuite) TestAllocateCheckbook_StaffForbidden() {
	ctx := context.Background()
	req := dto.AllocateCheckbookRequest{SeriesStart: 1, SeriesEnd: 10}

	staffActor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
	checkbook, err := suite.service.AllocateCheckbook(ctx, staffActor, suite.bankAccountID, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(checkbook)
	suite.mockCheckbookRepo.AssertNotCalled(suite.T(), "SaveCheckbook", mock.Anything, mock.Anything)
}

func (suite *CheckbookServiceTestSuite) TestAllocateCheckbook_InvalidRange() {
	ctx := context.Background()
	req := dto.AllocateCheckbookRequest{SeriesStart: 100, SeriesEnd: 99}

	checkbook, err := suite.service.AllocateCheckbook(ctx, suite.adminActor, suite.bankAccountID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(checkbook)
}

func (suite *CheckbookServiceTestSuite) TestAllocateCheckbook_ActiveAlreadyExists() {
	ctx := context.Background()
	req := dto.AllocateCheckbookRequest{SeriesStart: 2001, SeriesEnd: 2050}

	suite.mockAccountRepo.On("FindBankAccountByID", ctx, suite.bankAccountID).
		Return(&domain.BankAccount{BankAccountID: suite.bankAccountID}, nil).Once()
	suite.mockCheckbookRepo.On("FindActiveCheckbook", ctx, suite.bankAccountID).
		Return(&domain.Checkbook{CheckbookID: uuid.NewString(), Status: domain.CheckbookActive}, nil).Once()

	checkbook, err := suite.service.AllocateCheckbook(ctx, suite.adminActor, suite.bankAccountID, req)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(checkbook)
	suite.mockCheckbookRepo.AssertNotCalled(suite.T(), "SaveCheckbook", mock.Anything, mock.Anything)
}

func (suite *CheckbookServiceTestSuite) TestAllocateCheckbook_OverlappingSeries() {
	ctx := context.Background()
	req := dto.AllocateCheckbookRequest{SeriesStart: 1025, SeriesEnd: 1075}

	suite.mockAccountRepo.On("FindBankAccountByID", ctx, suite.bankAccountID).
		Return(&domain.BankAccount{BankAccountID: suite.bankAccountID}, nil).Once()
	suite.mockCheckbookRepo.On("FindActiveCheckbook", ctx, suite.bankAccountID).
		Return(nil, apperrors.ErrNoActiveCheckbook).Once()
	suite.mockCheckbookRepo.On("HasOverlappingSeries", ctx, suite.bankAccountID, int64(1025), int64(1075)).
		Return(true, nil).Once()

	checkbook, err := suite.service.AllocateCheckbook(ctx, suite.adminActor, suite.bankAccountID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(checkbook)
	suite.mockCheckbookRepo.AssertNotCalled(suite.T(), "SaveCheckbook", mock.Anything, mock.Anything)
}

func (suite *CheckbookServiceTestSuite) TestPeekNextCheckNumber_Success() {
	ctx := context.Background()

	suite.mockCheckbookRepo.On("FindActiveCheckbook", ctx, suite.bankAccountID).
		Return(&domain.Checkbook{NextCheckNo: 1042, Status: domain.CheckbookActive}, nil).Once()

	next, err := suite.service.PeekNextCheckNumber(ctx, suite.bankAccountID)

	suite.NoError(err)
	suite.Equal(int64(1042), next)
}

func (suite *CheckbookServiceTestSuite) TestPeekNextCheckNumber_NoActiveCheckbook() {
	ctx := context.Background()

	suite.mockCheckbookRepo.On("FindActiveCheckbook", ctx, suite.bankAccountID).
		Return(nil, apperrors.ErrNoActiveCheckbook).Once()

	_, err := suite.service.PeekNextCheckNumber(ctx, suite.bankAccountID)

	suite.ErrorIs(err, apperrors.ErrNoActiveCheckbook)
}

func (suite *CheckbookServiceTestSuite) TestCloseCheckbook_Success() {
	ctx := context.Background()
	checkbookID := uuid.NewString()

	suite.mockCheckbookRepo.On("FindCheckbookByID", ctx, checkbookID).
		Return(&domain.Checkbook{CheckbookID: checkbookID, Status: domain.CheckbookActive, SeriesStart: 1, SeriesEnd: 50, NextCheckNo: 10}, nil).Once()
	suite.mockCheckbookRepo.On("CloseCheckbook", ctx, checkbookID, suite.adminActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.CloseCheckbook(ctx, suite.adminActor, checkbookID)

	suite.NoError(err)
	suite.mockCheckbookRepo.AssertExpectations(suite.T())
}

func (suite *CheckbookServiceTestSuite) TestCloseCheckbook_AlreadyClosed() {
	ctx := context.Background()
	checkbookID := uuid.NewString()

	suite.mockCheckbookRepo.On("FindCheckbookByID", ctx, checkbookID).
		Return(&domain.Checkbook{CheckbookID: checkbookID, Status: domain.CheckbookClosed}, nil).Once()

	err := suite.service.CloseCheckbook(ctx, suite.adminActor, checkbookID)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockCheckbookRepo.AssertNotCalled(suite.T(), "CloseCheckbook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckbookServiceTestSuite) TestCloseCheckbook_NotAdmin() {
	ctx := context.Background()

	err := suite.service.CloseCheckbook(ctx, suite.liaisonActor, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestCheckbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckbookServiceTestSuite))
}
