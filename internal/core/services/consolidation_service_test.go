package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/core/services"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConsolidationServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.ConsolidationSvcFacade
}

func (suite *ConsolidationServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = NewMockLedgerRepository()
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewConsolidationService(suite.mockLedgerRepo, suite.mockVoucherRepo)
}

func unmirroredFundIn(account domain.Account) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		TxnNumber:      "TXN-20240103-0009",
		AccountID:      account.AccountID,
		Direction:      domain.DirectionFundIn,
		Amount:         decimal.RequireFromString("750"),
		Category:       "Daily Collection",
		TxnDate:        time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		AdjustmentSign: 1,
	}
}

func (suite *ConsolidationServiceTestSuite) TestSweepUnmirrored_RepairsMovement() {
	ctx := context.Background()
	account := hospitalAccount("3000")
	main := mainAccount("10000")
	entry := unmirroredFundIn(account)
	tx := suite.mockLedgerRepo.Tx

	suite.mockLedgerRepo.On("FindUnmirroredFundMovements", ctx, 100).Return([]domain.LedgerEntry{entry}, nil).Once()
	tx.On("FindVoucherBySourceTxn", ctx, entry.TxnNumber).Return(nil, nil).Once()
	tx.On("GetAccountForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240103-0004", nil).Once()

	var insertedVoucher domain.Voucher
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Run(func(args mock.Arguments) {
		insertedVoucher = args.Get(1).(domain.Voucher)
	}).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, main.AccountID, decimal.RequireFromString("750"), "sweeper", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("SetEntryVoucherNumber", ctx, entry.EntryID, "VCH-20240103-0004").Return(nil).Once()

	scanned, repaired, err := suite.service.SweepUnmirrored(ctx, 0, "sweeper")

	suite.Require().NoError(err)
	suite.Equal(1, scanned)
	suite.Require().Len(repaired, 1)
	suite.Equal(domain.VoucherCredit, insertedVoucher.Type)
	suite.Equal(entry.TxnNumber, insertedVoucher.SourceTxnNumber)
	suite.Equal("sweeper", insertedVoucher.CreatedBy)
	suite.True(insertedVoucher.RunningBalance.Equal(decimal.RequireFromString("10750")))
	tx.AssertExpectations(suite.T())
}

func (suite *ConsolidationServiceTestSuite) TestSweepUnmirrored_AlreadyMirroredRelinksOnly() {
	ctx := context.Background()
	account := hospitalAccount("3000")
	entry := unmirroredFundIn(account)
	existing := &domain.Voucher{
		VoucherID:       uuid.NewString(),
		VoucherNumber:   "VCH-20240103-0002",
		Type:            domain.VoucherCredit,
		Amount:          entry.Amount,
		SourceTxnNumber: entry.TxnNumber,
	}
	tx := suite.mockLedgerRepo.Tx

	suite.mockLedgerRepo.On("FindUnmirroredFundMovements", ctx, 100).Return([]domain.LedgerEntry{entry}, nil).Once()
	tx.On("FindVoucherBySourceTxn", ctx, entry.TxnNumber).Return(existing, nil).Once()
	tx.On("SetEntryVoucherNumber", ctx, entry.EntryID, existing.VoucherNumber).Return(nil).Once()

	scanned, repaired, err := suite.service.SweepUnmirrored(ctx, 0, "sweeper")

	suite.Require().NoError(err)
	suite.Equal(1, scanned)
	// Relinking is not a repair; no new voucher was produced.
	suite.Empty(repaired)
	tx.AssertNotCalled(suite.T(), "InsertVoucher", mock.Anything, mock.Anything)
	tx.AssertExpectations(suite.T())
}

func (suite *ConsolidationServiceTestSuite) TestSweepUnmirrored_ContinuesPastFailures() {
	ctx := context.Background()
	account := hospitalAccount("3000")
	main := mainAccount("10000")
	bad := unmirroredFundIn(account)
	good := unmirroredFundIn(account)
	good.TxnNumber = "TXN-20240103-0010"
	tx := suite.mockLedgerRepo.Tx

	suite.mockLedgerRepo.On("FindUnmirroredFundMovements", ctx, 100).Return([]domain.LedgerEntry{bad, good}, nil).Once()
	tx.On("FindVoucherBySourceTxn", ctx, bad.TxnNumber).Return(nil, context.DeadlineExceeded).Once()
	tx.On("FindVoucherBySourceTxn", ctx, good.TxnNumber).Return(nil, nil).Once()
	tx.On("GetAccountForUpdate", ctx, account.AccountID).Return(account, nil).Once()
	tx.On("GetAccountByKindForUpdate", ctx, domain.KindMain).Return(main, nil).Once()
	tx.On("NextSequenceNumber", ctx, domain.SeqVoucher, mock.AnythingOfType("time.Time")).Return("VCH-20240103-0005", nil).Once()
	tx.On("InsertVoucher", ctx, mock.AnythingOfType("domain.Voucher")).Return(nil).Once()
	tx.On("AddToAccountBalance", ctx, main.AccountID, mock.AnythingOfType("decimal.Decimal"), "sweeper", mock.AnythingOfType("time.Time")).Return(nil).Once()
	tx.On("SetEntryVoucherNumber", ctx, good.EntryID, "VCH-20240103-0005").Return(nil).Once()

	scanned, repaired, err := suite.service.SweepUnmirrored(ctx, 0, "sweeper")

	suite.Require().NoError(err)
	suite.Equal(2, scanned)
	suite.Len(repaired, 1)
	tx.AssertExpectations(suite.T())
}

func (suite *ConsolidationServiceTestSuite) TestListVouchers_NormalizesRange() {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 7, 30, 0, 0, time.UTC)
	fromMidnight := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toMidnight := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockVoucherRepo.On("ListVouchers", ctx, fromMidnight, toMidnight).Return([]domain.Voucher{}, decimal.Zero, nil).Once()

	_, err := suite.service.ListVouchers(ctx, from, to)
	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestConsolidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidationServiceTestSuite))
}
