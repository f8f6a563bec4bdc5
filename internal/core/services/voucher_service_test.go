package services_test

import (
	"context"
	"testing"
	"time"

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

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockCheckRepo   *MockCheckRepository
	mockAccountRepo *MockBankAccountRepository
	mockAuditRepo   *MockAuditRepository
	service         portssvc.VoucherSvcFacade

	companyID     string
	voucherID     string
	bankAccountID string
	staffActor    domain.Actor
	liaisonActor  domain.Actor
	adminActor    domain.Actor
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockCheckRepo = new(MockCheckRepository)
	suite.mockAccountRepo = new(MockBankAccountRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockCheckRepo, suite.mockAccountRepo, suite.mockAuditRepo)

	suite.companyID = uuid.NewString()
	suite.voucherID = uuid.NewString()
	suite.bankAccountID = uuid.NewString()
	suite.staffActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}
	suite.liaisonActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleLiaison}
	suite.adminActor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
}

func (suite *VoucherServiceTestSuite) newVoucher(status domain.VoucherStatus) *domain.Voucher {
	v := &domain.Voucher{
		VoucherID:   suite.voucherID,
		VoucherNo:   "ACME-000042",
		CompanyID:   suite.companyID,
		Status:      status,
		Amount:      decimal.NewFromInt(2500),
		Payee:       "Acme Supplies",
		Category:    "OFFICE_SUPPLIES",
		PaymentType: domain.PaymentCheck,
	}
	v.CreatedBy = suite.staffActor.UserID
	if status != domain.VoucherPendingLiaison {
		v.BankAccountID = &suite.bankAccountID
	}
	return v
}

func (suite *VoucherServiceTestSuite) newCashVoucher(status domain.VoucherStatus) *domain.Voucher {
	v := suite.newVoucher(status)
	v.PaymentType = domain.PaymentCash
	v.BankAccountID = nil
	return v
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Success() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		CompanyID:   suite.companyID,
		Payee:       "Acme Supplies",
		Amount:      decimal.NewFromInt(2500),
		Category:    "OFFICE_SUPPLIES",
		PaymentType: "CHECK",
	}

	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.CompanyID == suite.companyID &&
			v.Status == domain.VoucherPendingLiaison &&
			v.Amount.Equal(decimal.NewFromInt(2500)) &&
			v.VoucherNo == ""
	})).Return(suite.newVoucher(domain.VoucherPendingLiaison), nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, suite.staffActor, req)

	suite.NoError(err)
	suite.Equal(domain.VoucherPendingLiaison, voucher.Status)
	suite.Equal("ACME-000042", voucher.VoucherNo)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{CompanyID: suite.companyID, Payee: "Acme", Amount: decimal.Zero, Category: "MISC", PaymentType: "CHECK"}

	voucher, err := suite.service.CreateVoucher(ctx, suite.staffActor, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(voucher)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestSubmitVoucher_Success() {
	ctx := context.Background()
	checkDate := "2026-04-01"
	req := dto.SubmitVoucherRequest{BankAccountID: suite.bankAccountID, CheckDate: &checkDate}

	pending := suite.newVoucher(domain.VoucherPendingLiaison)
	forwarded := suite.newVoucher(domain.VoucherPendingAdmin)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pending, nil).Once()
	suite.mockAccountRepo.On("FindBankAccountByID", ctx, suite.bankAccountID).
		Return(&domain.BankAccount{BankAccountID: suite.bankAccountID}, nil).Once()
	suite.mockVoucherRepo.On("SubmitVoucher", ctx, suite.voucherID, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == suite.bankAccountID
	}), mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && d.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	}), mock.AnythingOfType("domain.AuditEntry"), suite.liaisonActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(forwarded, nil).Once()

	voucher, err := suite.service.SubmitVoucher(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.NoError(err)
	suite.Equal(domain.VoucherPendingAdmin, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestSubmitVoucher_StaffForbidden() {
	ctx := context.Background()
	req := dto.SubmitVoucherRequest{BankAccountID: suite.bankAccountID}

	voucher, err := suite.service.SubmitVoucher(ctx, suite.staffActor, suite.voucherID, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(voucher)
}

func (suite *VoucherServiceTestSuite) TestSubmitVoucher_WrongStatus() {
	ctx := context.Background()
	req := dto.SubmitVoucherRequest{BankAccountID: suite.bankAccountID}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherIssued), nil).Once()

	voucher, err := suite.service.SubmitVoucher(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(voucher)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SubmitVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestSubmitVoucher_CashWithoutBankAccount() {
	ctx := context.Background()
	req := dto.SubmitVoucherRequest{}

	pending := suite.newCashVoucher(domain.VoucherPendingLiaison)
	forwarded := suite.newCashVoucher(domain.VoucherPendingAdmin)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pending, nil).Once()
	suite.mockVoucherRepo.On("SubmitVoucher", ctx, suite.voucherID, (*string)(nil), (*time.Time)(nil),
		mock.AnythingOfType("domain.AuditEntry"), suite.liaisonActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(forwarded, nil).Once()

	voucher, err := suite.service.SubmitVoucher(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.NoError(err)
	suite.Equal(domain.VoucherPendingAdmin, voucher.Status)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindBankAccountByID", mock.Anything, mock.Anything)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestSubmitVoucher_CheckVoucherRequiresBankAccount() {
	ctx := context.Background()
	req := dto.SubmitVoucherRequest{}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherPendingLiaison), nil).Once()

	voucher, err := suite.service.SubmitVoucher(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(voucher)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SubmitVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestApproveVoucher_Success() {
	ctx := context.Background()

	pendingAdmin := suite.newVoucher(domain.VoucherPendingAdmin)
	issued := suite.newVoucher(domain.VoucherIssued)
	checkNo := int64(1042)
	issued.CheckNo = &checkNo

	spawnedCheck := &domain.Check{
		CheckID:       uuid.NewString(),
		BankAccountID: suite.bankAccountID,
		CheckbookID:   uuid.NewString(),
		VoucherID:     suite.voucherID,
		CheckNumber:   1042,
		Payee:         pendingAdmin.Payee,
		Amount:        pendingAdmin.Amount,
		Status:        domain.CheckIssued,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pendingAdmin, nil).Once()
	suite.mockVoucherRepo.On("ApproveVoucher", ctx, *pendingAdmin, mock.MatchedBy(func(template domain.Check) bool {
		return template.BankAccountID == suite.bankAccountID &&
			template.VoucherID == suite.voucherID &&
			template.Payee == pendingAdmin.Payee &&
			template.Amount.Equal(pendingAdmin.Amount) &&
			template.Status == domain.CheckIssued &&
			template.CheckNumber == 0
	}), mock.AnythingOfType("domain.AuditEntry")).Return(spawnedCheck, nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(issued, nil).Once()

	voucher, check, err := suite.service.ApproveVoucher(ctx, suite.adminActor, suite.voucherID)

	suite.NoError(err)
	suite.Equal(domain.VoucherIssued, voucher.Status)
	suite.Equal(int64(1042), check.CheckNumber)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestApproveVoucher_CashIssuesWithoutCheck() {
	ctx := context.Background()

	pendingAdmin := suite.newCashVoucher(domain.VoucherPendingAdmin)
	issued := suite.newCashVoucher(domain.VoucherIssued)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pendingAdmin, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.voucherID, domain.VoucherPendingAdmin, domain.VoucherIssued, "", mock.AnythingOfType("domain.AuditEntry"), suite.adminActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(issued, nil).Once()

	voucher, check, err := suite.service.ApproveVoucher(ctx, suite.adminActor, suite.voucherID)

	suite.NoError(err)
	suite.Equal(domain.VoucherIssued, voucher.Status)
	suite.Nil(check)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "ApproveVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestApproveVoucher_NotAdmin() {
	ctx := context.Background()

	voucher, check, err := suite.service.ApproveVoucher(ctx, suite.liaisonActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(voucher)
	suite.Nil(check)
}

func (suite *VoucherServiceTestSuite) TestApproveVoucher_NoBankAccountAttached() {
	ctx := context.Background()

	pendingAdmin := suite.newVoucher(domain.VoucherPendingAdmin)
	pendingAdmin.BankAccountID = nil

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pendingAdmin, nil).Once()

	voucher, check, err := suite.service.ApproveVoucher(ctx, suite.adminActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(voucher)
	suite.Nil(check)
}

func (suite *VoucherServiceTestSuite) TestApproveVoucher_WrongStatus() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherPendingLiaison), nil).Once()

	voucher, check, err := suite.service.ApproveVoucher(ctx, suite.adminActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(voucher)
	suite.Nil(check)
}

func (suite *VoucherServiceTestSuite) TestCancelVoucher_CreatorCanCancel() {
	ctx := context.Background()

	pending := suite.newVoucher(domain.VoucherPendingLiaison)
	cancelled := suite.newVoucher(domain.VoucherCancelled)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(pending, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.voucherID, domain.VoucherPendingLiaison, domain.VoucherCancelled, "", mock.AnythingOfType("domain.AuditEntry"), suite.staffActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(cancelled, nil).Once()

	voucher, err := suite.service.CancelVoucher(ctx, suite.staffActor, suite.voucherID)

	suite.NoError(err)
	suite.Equal(domain.VoucherCancelled, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCancelVoucher_StrangerForbidden() {
	ctx := context.Background()
	stranger := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStaff}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherPendingLiaison), nil).Once()

	voucher, err := suite.service.CancelVoucher(ctx, stranger, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(voucher)
}

func (suite *VoucherServiceTestSuite) TestCancelVoucher_AfterSubmitRejected() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherPendingAdmin), nil).Once()

	voucher, err := suite.service.CancelVoucher(ctx, suite.adminActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(voucher)
}

func (suite *VoucherServiceTestSuite) TestRequestVoid_Success() {
	ctx := context.Background()
	req := dto.VoidVoucherRequest{Reason: "duplicate payment"}

	issued := suite.newVoucher(domain.VoucherIssued)
	voidPending := suite.newVoucher(domain.VoucherVoidPendingApproval)
	voidPending.VoidReason = req.Reason

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(issued, nil).Once()
	suite.mockCheckRepo.On("FindCheckByVoucherID", ctx, suite.voucherID).
		Return(&domain.Check{CheckID: uuid.NewString(), Status: domain.CheckIssued}, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.voucherID, domain.VoucherIssued, domain.VoucherVoidPendingApproval, req.Reason, mock.AnythingOfType("domain.AuditEntry"), suite.liaisonActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(voidPending, nil).Once()

	voucher, err := suite.service.RequestVoid(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.NoError(err)
	suite.Equal(domain.VoucherVoidPendingApproval, voucher.Status)
	suite.Equal(req.Reason, voucher.VoidReason)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestRequestVoid_ClaimedCheckRejected() {
	ctx := context.Background()
	req := dto.VoidVoucherRequest{Reason: "wrong payee"}

	// Once the physical check is in someone's hands, the bounce path is the
	// only way out.
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherIssued), nil).Once()
	suite.mockCheckRepo.On("FindCheckByVoucherID", ctx, suite.voucherID).
		Return(&domain.Check{CheckID: uuid.NewString(), Status: domain.CheckClaimed}, nil).Once()

	voucher, err := suite.service.RequestVoid(ctx, suite.liaisonActor, suite.voucherID, req)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(voucher)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestApproveVoid_Success() {
	ctx := context.Background()
	checkID := uuid.NewString()

	voidPending := suite.newVoucher(domain.VoucherVoidPendingApproval)
	voidPending.VoidReason = "duplicate payment"
	voided := suite.newVoucher(domain.VoucherVoided)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(voidPending, nil).Once()
	suite.mockCheckRepo.On("FindCheckByVoucherID", ctx, suite.voucherID).
		Return(&domain.Check{CheckID: checkID, Status: domain.CheckIssued}, nil).Once()
	suite.mockVoucherRepo.On("VoidVoucherAndCheck", ctx, suite.voucherID, checkID, mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.EntityType == domain.AuditEntityVoucher && e.EntityID == suite.voucherID && e.ToStatus == string(domain.VoucherVoided)
	}), mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.EntityType == domain.AuditEntityCheck && e.EntityID == checkID &&
			e.FromStatus == string(domain.CheckIssued) && e.ToStatus == string(domain.CheckVoided)
	}), suite.adminActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(voided, nil).Once()

	voucher, err := suite.service.ApproveVoid(ctx, suite.adminActor, suite.voucherID)

	suite.NoError(err)
	suite.Equal(domain.VoucherVoided, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestApproveVoid_NotAdmin() {
	ctx := context.Background()

	voucher, err := suite.service.ApproveVoid(ctx, suite.liaisonActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(voucher)
}

func (suite *VoucherServiceTestSuite) TestRejectVoid_Success() {
	ctx := context.Background()

	voidPending := suite.newVoucher(domain.VoucherVoidPendingApproval)
	issued := suite.newVoucher(domain.VoucherIssued)

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(voidPending, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", ctx, suite.voucherID, domain.VoucherVoidPendingApproval, domain.VoucherIssued, "", mock.AnythingOfType("domain.AuditEntry"), suite.adminActor.UserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).Return(issued, nil).Once()

	voucher, err := suite.service.RejectVoid(ctx, suite.adminActor, suite.voucherID)

	suite.NoError(err)
	suite.Equal(domain.VoucherIssued, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestRejectVoid_WrongStatus() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherIssued), nil).Once()

	voucher, err := suite.service.RejectVoid(ctx, suite.adminActor, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(voucher)
}

func (suite *VoucherServiceTestSuite) TestListVouchers_ClampsLimit() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, 100, 0).
		Return([]domain.Voucher{}, nil).Once()

	_, err := suite.service.ListVouchers(ctx, dto.ListVouchersParams{CompanyID: suite.companyID, Limit: 9999})

	suite.NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGetVoucherHistory_Success() {
	ctx := context.Background()

	entries := []domain.AuditEntry{
		{EntityType: domain.AuditEntityVoucher, EntityID: suite.voucherID, FromStatus: "PENDING_LIAISON", ToStatus: "PENDING_ADMIN"},
		{EntityType: domain.AuditEntityVoucher, EntityID: suite.voucherID, FromStatus: "PENDING_ADMIN", ToStatus: "ISSUED"},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(suite.newVoucher(domain.VoucherIssued), nil).Once()
	suite.mockAuditRepo.On("ListAuditEntries", ctx, domain.AuditEntityVoucher, suite.voucherID).
		Return(entries, nil).Once()

	history, err := suite.service.GetVoucherHistory(ctx, suite.voucherID)

	suite.NoError(err)
	suite.Len(history, 2)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestGetVoucherHistory_VoucherNotFound() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.voucherID).
		Return(nil, apperrors.NewNotFoundError("voucher not found")).Once()

	history, err := suite.service.GetVoucherHistory(ctx, suite.voucherID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(history)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "ListAuditEntries", mock.Anything, mock.Anything, mock.Anything)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
