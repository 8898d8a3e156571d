package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/core/services"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockVendorRepo *MockVendorRepository
	service        portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = NewMockLedgerRepository()
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockLedgerRepo, suite.mockVendorRepo)
}

func testVendor(due string) (*domain.Vendor, domain.Account) {
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      "City Pharma Supplies",
		Kind:      domain.KindVendor,
		Balance:   decimal.RequireFromString(due),
		IsActive:  true,
	}
	vendor := &domain.Vendor{
		VendorID:     uuid.NewString(),
		VendorNumber: "VEN-0001",
		AccountID:    account.AccountID,
		Name:         "City Pharma Supplies",
		BalanceType:  domain.BalanceDue,
		IsActive:     true,
	}
	return vendor, account
}

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	tx := suite.mockLedgerRepo.Tx

	tx.On("NextSequenceNumber", ctx, domain.SeqVendor, mock.AnythingOfType("time.Time")).Return("VEN-0007", nil).Once()
	tx.On("InsertAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	tx.On("InsertVendor", ctx, mock.AnythingOfType("domain.Vendor")).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, dto.CreateVendorRequest{
		Name:           "City Pharma Supplies",
		OpeningBalance: decimal.RequireFromString("500"),
		CreditLimit:    decimal.RequireFromString("10000"),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("VEN-0007", vendor.VendorNumber)
	suite.Equal(domain.BalanceDue, vendor.BalanceType)
	suite.NotEmpty(vendor.AccountID)
	suite.True(vendor.IsActive)
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_NegativeOpeningRejected() {
	_, err := suite.service.CreateVendor(context.Background(), dto.CreateVendorRequest{
		Name:           "City Pharma Supplies",
		OpeningBalance: decimal.RequireFromString("-100"),
	}, "admin-1")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VendorServiceTestSuite) TestRecordPurchase_OnCredit() {
	ctx := context.Background()
	vendor, account := testVendor("0")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240110-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, account.AccountID, decimal.RequireFromString("1200"), "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.RecordPurchase(ctx, vendor.VendorID, dto.RecordPurchaseRequest{
		Amount:   decimal.RequireFromString("1200"),
		Category: "Medicine Stock",
		TxnDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}, "clerk-2")

	suite.Require().NoError(err)
	suite.Equal(domain.DirectionPurchase, result.PurchaseEntry.Direction)
	suite.True(result.PurchaseEntry.RunningBalance.Equal(decimal.RequireFromString("1200")))
	suite.Nil(result.PaymentEntry)
	suite.Nil(result.VendorPaymentEntry)
	suite.False(result.CreditLimitExceeded)
	// Purchases on credit move no cash, so nothing mirrors to Main.
	tx.AssertNotCalled(suite.T(), "InsertVoucher", mock.Anything, mock.Anything)
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPurchase_WithPartPayment() {
	ctx := context.Background()
	vendor, vendorAccount := testVendor("0")
	paying := domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Medicine Account",
		Kind:      domain.KindMedicine,
		Balance:   decimal.RequireFromString("5000"),
		IsActive:  true,
	}
	main := mainAccount("9000")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMedicine).Return(paying, nil).Once()
	tx.On("GetAccountForUpdate", ctx, vendorAccount.AccountID).Return(vendorAccount, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Times(3)
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240110-0002", nil).Times(3)
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240110-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Times(3)
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("decimal.Decimal"), "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Times(4)
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.RecordPurchase(ctx, vendor.VendorID, dto.RecordPurchaseRequest{
		Amount:     decimal.RequireFromString("1000"),
		PaidAmount: decimal.RequireFromString("400"),
		PayingKind: "MEDICINE",
		Category:   "Medicine Stock",
		TxnDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}, "clerk-2")

	suite.Require().NoError(err)
	suite.True(result.PurchaseEntry.RunningBalance.Equal(decimal.RequireFromString("1000")))
	suite.Require().NotNil(result.PaymentEntry)
	suite.Equal(domain.DirectionFundOut, result.PaymentEntry.Direction)
	suite.Require().NotNil(result.VendorPaymentEntry)
	suite.Equal(domain.DirectionPayment, result.VendorPaymentEntry.Direction)
	// The vendor-side payment runs off the post-purchase balance.
	suite.True(result.VendorPaymentEntry.RunningBalance.Equal(decimal.RequireFromString("600")))
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPurchase_PaidExceedsAmount() {
	ctx := context.Background()
	vendor, _ := testVendor("0")
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()

	_, err := suite.service.RecordPurchase(ctx, vendor.VendorID, dto.RecordPurchaseRequest{
		Amount:     decimal.RequireFromString("100"),
		PaidAmount: decimal.RequireFromString("150"),
		PayingKind: "MEDICINE",
		Category:   "Medicine Stock",
		TxnDate:    time.Now(),
	}, "clerk-2")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VendorServiceTestSuite) TestRecordPurchase_PaidWithoutPayingKind() {
	ctx := context.Background()
	vendor, _ := testVendor("0")
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()

	_, err := suite.service.RecordPurchase(ctx, vendor.VendorID, dto.RecordPurchaseRequest{
		Amount:     decimal.RequireFromString("100"),
		PaidAmount: decimal.RequireFromString("50"),
		Category:   "Medicine Stock",
		TxnDate:    time.Now(),
	}, "clerk-2")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VendorServiceTestSuite) TestRecordPurchase_CreditLimitFlagged() {
	ctx := context.Background()
	vendor, account := testVendor("0")
	vendor.CreditLimit = decimal.RequireFromString("1000")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240110-0003", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, account.AccountID, decimal.RequireFromString("2500"), "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.RecordPurchase(ctx, vendor.VendorID, dto.RecordPurchaseRequest{
		Amount:   decimal.RequireFromString("2500"),
		Category: "Medicine Stock",
		TxnDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}, "clerk-2")

	suite.Require().NoError(err)
	// Advisory flag only; the purchase still posted.
	suite.True(result.CreditLimitExceeded)
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPayment_OverpaymentFlipsToAdvance() {
	ctx := context.Background()
	vendor, vendorAccount := testVendor("300")
	paying := hospitalAccount("2000")
	main := mainAccount("4000")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAccountForUpdate", ctx, vendorAccount.AccountID).Return(vendorAccount, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Twice()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240111-0001", nil).Twice()
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240111-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Twice()
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("decimal.Decimal"), "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Times(3)
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceAdvance, "clerk-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.RecordPayment(ctx, vendor.VendorID, dto.RecordPaymentRequest{
		Amount:     decimal.RequireFromString("500"),
		PayingKind: "HOSPITAL",
		Category:   "Vendor Settlement",
		TxnDate:    time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
	}, "clerk-2")

	suite.Require().NoError(err)
	suite.Equal(domain.BalanceAdvance, result.BalanceType)
	suite.True(result.VendorEntry.RunningBalance.Equal(decimal.RequireFromString("-200")))
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordPayment_InactiveVendorRejected() {
	ctx := context.Background()
	vendor, _ := testVendor("300")
	vendor.IsActive = false
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()

	_, err := suite.service.RecordPayment(ctx, vendor.VendorID, dto.RecordPaymentRequest{
		Amount:     decimal.RequireFromString("100"),
		PayingKind: "HOSPITAL",
		Category:   "Vendor Settlement",
		TxnDate:    time.Now(),
	}, "clerk-2")
	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VendorServiceTestSuite) TestRecordAdjustment_DecreaseLowersDue() {
	ctx := context.Background()
	vendor, vendorAccount := testVendor("800")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountForUpdate", ctx, vendorAccount.AccountID).Return(vendorAccount, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240112-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, vendorAccount.AccountID, decimal.RequireFromString("-100"), "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	entry, err := suite.service.RecordAdjustment(ctx, vendor.VendorID, dto.RecordAdjustmentRequest{
		Amount:    decimal.RequireFromString("100"),
		Decrease:  true,
		Category:  "Correction",
		Narration: "Invoice disputed and credited",
		TxnDate:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(-1, entry.AdjustmentSign)
	suite.True(entry.RunningBalance.Equal(decimal.RequireFromString("700")))
	tx.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestRecordAdjustment_NarrationRequired() {
	ctx := context.Background()
	vendor, _ := testVendor("800")
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()

	_, err := suite.service.RecordAdjustment(ctx, vendor.VendorID, dto.RecordAdjustmentRequest{
		Amount:   decimal.RequireFromString("100"),
		Category: "Correction",
		TxnDate:  time.Now(),
	}, "admin-1")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
