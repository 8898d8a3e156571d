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

type AssetServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockAssetRepo  *MockAssetRepository
	mockVendorRepo *MockVendorRepository
	service        portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = NewMockLedgerRepository()
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewAssetService(suite.mockLedgerRepo, suite.mockAssetRepo, suite.mockVendorRepo)
}

func (suite *AssetServiceTestSuite) TestAcquireAsset_VendorCreditWithDownPayment() {
	ctx := context.Background()
	vendor, vendorAccount := testVendor("0")
	paying := hospitalAccount("100000")
	main := mainAccount("250000")
	tx := suite.mockLedgerRepo.Tx

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqAsset, mock.AnythingOfType("time.Time")).Return("AST-0012", nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAccountForUpdate", ctx, vendorAccount.AccountID).Return(vendorAccount, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Times(3)
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240115-0001", nil).Times(3)
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240115-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Times(3)
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("decimal.Decimal"), "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Times(4)
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	var insertedAsset domain.FixedAsset
	tx.On("InsertAsset", ctx, mock.AnythingOfType("domain.FixedAsset")).Run(func(args mock.Arguments) {
		insertedAsset = args.Get(1).(domain.FixedAsset)
	}).Return(nil).Once()

	result, err := suite.service.AcquireAsset(ctx, dto.AcquireAssetRequest{
		Name:        "Ultrasound Machine",
		TotalCost:   decimal.RequireFromString("50000"),
		PaidAmount:  decimal.RequireFromString("20000"),
		VendorID:    vendor.VendorID,
		FundingKind: "HOSPITAL",
		TxnDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("AST-0012", result.Asset.AssetNumber)
	suite.Equal(domain.AssetActive, result.Asset.Status)
	suite.True(result.Asset.DueAmount.Equal(decimal.RequireFromString("30000")))
	suite.Require().NotNil(result.PurchaseEntry)
	suite.Equal(domain.DirectionPurchase, result.PurchaseEntry.Direction)
	suite.Equal(domain.RefTypeFixedAsset, result.PurchaseEntry.Reference.Type)
	suite.Require().NotNil(result.PaymentEntry)
	suite.Equal(domain.DirectionFundOut, result.PaymentEntry.Direction)
	suite.Equal(insertedAsset.AssetID, result.PurchaseEntry.Reference.ID)
	suite.Require().NotNil(insertedAsset.VendorID)
	suite.Equal(vendor.VendorID, *insertedAsset.VendorID)
	tx.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestAcquireAsset_OutrightPurchase() {
	ctx := context.Background()
	paying := hospitalAccount("100000")
	main := mainAccount("250000")
	tx := suite.mockLedgerRepo.Tx

	tx.On("NextSequenceNumber", ctx, domain.SeqAsset, mock.AnythingOfType("time.Time")).Return("AST-0013", nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240115-0002", nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240115-0002", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("decimal.Decimal"), "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Twice()
	tx.On("InsertAsset", ctx, mock.AnythingOfType("domain.FixedAsset")).Return(nil).Once()

	result, err := suite.service.AcquireAsset(ctx, dto.AcquireAssetRequest{
		Name:        "Office Furniture",
		TotalCost:   decimal.RequireFromString("8000"),
		PaidAmount:  decimal.RequireFromString("8000"),
		FundingKind: "HOSPITAL",
		TxnDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssetFullyPaid, result.Asset.Status)
	suite.True(result.Asset.DueAmount.IsZero())
	suite.Nil(result.PurchaseEntry)
	suite.Require().NotNil(result.PaymentEntry)
	suite.Equal(domain.DirectionFundOut, result.PaymentEntry.Direction)
	tx.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestAcquireAsset_PartiallyPaidNeedsVendor() {
	_, err := suite.service.AcquireAsset(context.Background(), dto.AcquireAssetRequest{
		Name:        "X-Ray Machine",
		TotalCost:   decimal.RequireFromString("60000"),
		PaidAmount:  decimal.RequireFromString("10000"),
		FundingKind: "HOSPITAL",
		TxnDate:     time.Now(),
	}, "admin-1")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestAcquireAsset_PaidAboveCostRejected() {
	_, err := suite.service.AcquireAsset(context.Background(), dto.AcquireAssetRequest{
		Name:        "X-Ray Machine",
		TotalCost:   decimal.RequireFromString("60000"),
		PaidAmount:  decimal.RequireFromString("70000"),
		FundingKind: "HOSPITAL",
		TxnDate:     time.Now(),
	}, "admin-1")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestApplyPayment_ClearsDueAndMarksFullyPaid() {
	ctx := context.Background()
	vendor, vendorAccount := testVendor("15000")
	paying := hospitalAccount("50000")
	main := mainAccount("90000")
	tx := suite.mockLedgerRepo.Tx

	asset := domain.FixedAsset{
		AssetID:     uuid.NewString(),
		AssetNumber: "AST-0012",
		Name:        "Ultrasound Machine",
		TotalCost:   decimal.RequireFromString("50000"),
		PaidAmount:  decimal.RequireFromString("35000"),
		DueAmount:   decimal.RequireFromString("15000"),
		VendorID:    &vendor.VendorID,
		FundingKind: domain.KindHospital,
		Status:      domain.AssetActive,
	}

	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAssetForUpdate", ctx, asset.AssetID).Return(asset, nil).Once()
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	tx.On("GetAccountForUpdate", ctx, vendorAccount.AccountID).Return(vendorAccount, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("IsPeriodFinalized", ctx, mock.AnythingOfType("time.Time")).Return(false, nil).Twice()
	tx.On("NextSequenceNumber", ctx, domain.SeqTxn, mock.AnythingOfType("time.Time")).Return("TXN-20240201-0001", nil).Twice()
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240201-0001", nil).Once()
	tx.On("InsertEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Twice()
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("decimal.Decimal"), "clerk-3", mock.AnythingOfType("time.Time")).Return(nil).Times(3)
	tx.On("UpdateVendorBalanceType", ctx, vendor.VendorID, domain.BalanceDue, "clerk-3", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("UpdateAssetPayment", ctx, asset.AssetID,
		mock.AnythingOfType("decimal.Decimal"), mock.AnythingOfType("decimal.Decimal"),
		domain.AssetFullyPaid, "clerk-3", mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, entry, err := suite.service.ApplyPayment(ctx, asset.AssetID, dto.AssetPaymentRequest{
		Amount:     decimal.RequireFromString("15000"),
		PayingKind: "HOSPITAL",
		TxnDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}, "clerk-3")

	suite.Require().NoError(err)
	suite.Equal(domain.AssetFullyPaid, updated.Status)
	suite.True(updated.DueAmount.IsZero())
	suite.Equal(domain.DirectionFundOut, entry.Direction)
	tx.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestApplyPayment_AboveDueRejected() {
	ctx := context.Background()
	paying := hospitalAccount("50000")
	tx := suite.mockLedgerRepo.Tx

	asset := domain.FixedAsset{
		AssetID:     uuid.NewString(),
		AssetNumber: "AST-0012",
		TotalCost:   decimal.RequireFromString("50000"),
		PaidAmount:  decimal.RequireFromString("45000"),
		DueAmount:   decimal.RequireFromString("5000"),
		FundingKind: domain.KindHospital,
		Status:      domain.AssetActive,
	}

	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAssetForUpdate", ctx, asset.AssetID).Return(asset, nil).Once()

	_, _, err := suite.service.ApplyPayment(ctx, asset.AssetID, dto.AssetPaymentRequest{
		Amount:     decimal.RequireFromString("6000"),
		PayingKind: "HOSPITAL",
		TxnDate:    time.Now(),
	}, "clerk-3")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	tx.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestApplyPayment_InactiveAssetRejected() {
	ctx := context.Background()
	paying := hospitalAccount("50000")
	tx := suite.mockLedgerRepo.Tx

	asset := domain.FixedAsset{
		AssetID:     uuid.NewString(),
		DueAmount:   decimal.RequireFromString("5000"),
		FundingKind: domain.KindHospital,
		Status:      domain.AssetInactive,
	}

	tx.On("GetAccountByKindForUpdate", ctx, domain.KindHospital).Return(paying, nil).Once()
	tx.On("GetAssetForUpdate", ctx, asset.AssetID).Return(asset, nil).Once()

	_, _, err := suite.service.ApplyPayment(ctx, asset.AssetID, dto.AssetPaymentRequest{
		Amount:     decimal.RequireFromString("1000"),
		PayingKind: "HOSPITAL",
		TxnDate:    time.Now(),
	}, "clerk-3")

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
