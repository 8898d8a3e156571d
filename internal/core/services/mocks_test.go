package services_test

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerTxRepository is a mock type for the LedgerTxRepository interface
type MockLedgerTxRepository struct {
	mock.Mock
}

func (m *MockLedgerTxRepository) GetAccountForUpdate(ctx context.Context, accountID string) (domain.Account, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockLedgerTxRepository) GetAccountByKindForUpdate(ctx context.Context, kind domain.AccountKind) (domain.Account, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockLedgerTxRepository) IsPeriodFinalized(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTxRepository) NextSequenceNumber(ctx context.Context, prefix string, date time.Time) (string, error) {
	args := m.Called(ctx, prefix, date)
	return args.String(0), args.Error(1)
}

func (m *MockLedgerTxRepository) InsertEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) AddToAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal, actorID string, now time.Time) error {
	args := m.Called(ctx, accountID, delta, actorID, now)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) FindVoucherBySourceTxn(ctx context.Context, txnNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, txnNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockLedgerTxRepository) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) FindEntryByID(ctx context.Context, entryID string) (domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).(domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerTxRepository) SetEntryVoucherNumber(ctx context.Context, entryID string, voucherNumber string) error {
	args := m.Called(ctx, entryID, voucherNumber)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) InsertAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) InsertVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) UpdateVendorBalanceType(ctx context.Context, vendorID string, balanceType domain.VendorBalanceType, actorID string, now time.Time) error {
	args := m.Called(ctx, vendorID, balanceType, actorID, now)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) InsertAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockLedgerTxRepository) GetAssetForUpdate(ctx context.Context, assetID string) (domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	return args.Get(0).(domain.FixedAsset), args.Error(1)
}

func (m *MockLedgerTxRepository) UpdateAssetPayment(ctx context.Context, assetID string, paid, due decimal.Decimal, status domain.AssetStatus, actorID string, now time.Time) error {
	args := m.Called(ctx, assetID, paid, due, status, actorID, now)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryWithTx
// interface. WithTx runs the callback against the embedded tx mock, so a test
// arranges expectations on Tx and calls the service normally.
type MockLedgerRepository struct {
	mock.Mock
	Tx *MockLedgerTxRepository
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{Tx: new(MockLedgerTxRepository)}
}

func (m *MockLedgerRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTxRepository) error) error {
	return fn(ctx, m.Tx)
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntryByTxnNumber(ctx context.Context, txnNumber string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, txnNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) FindUnmirroredFundMovements(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByKind(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockVendorRepository is a mock type for the VendorRepository interface
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorWithBalance(ctx context.Context, vendorID string) (*portsrepo.VendorWithBalance, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.VendorWithBalance), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]portsrepo.VendorWithBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.VendorWithBalance), args.Error(1)
}

// MockAssetRepository is a mock type for the AssetRepository interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

// MockVoucherRepository is a mock type for the VoucherRepository interface
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherBySourceTxn(ctx context.Context, sourceTxnNumber string) (*domain.Voucher, error) {
	args := m.Called(ctx, sourceTxnNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, from, to time.Time) ([]domain.Voucher, decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	var vouchers []domain.Voucher
	if args.Get(0) != nil {
		vouchers = args.Get(0).([]domain.Voucher)
	}
	return vouchers, args.Get(1).(decimal.Decimal), args.Error(2)
}

// MockPeriodRepository is a mock type for the PeriodRepository interface
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FinalizePeriod(ctx context.Context, period domain.CollectionPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) IsFinalized(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeriodRepository) ListFinalized(ctx context.Context) ([]domain.CollectionPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionPeriod), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) (*portsrepo.BalanceSheetData, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.BalanceSheetData), args.Error(1)
}

func (m *MockReportingRepository) GetGroupedEntries(ctx context.Context, from, to time.Time, directions []domain.EntryDirection) ([]domain.GroupedRow, error) {
	args := m.Called(ctx, from, to, directions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupedRow), args.Error(1)
}

func (m *MockReportingRepository) GetBankReportData(ctx context.Context, year int, month time.Month) (decimal.Decimal, []domain.BankReportDay, error) {
	args := m.Called(ctx, year, month)
	var days []domain.BankReportDay
	if args.Get(1) != nil {
		days = args.Get(1).([]domain.BankReportDay)
	}
	return args.Get(0).(decimal.Decimal), days, args.Error(2)
}

func (m *MockReportingRepository) GetDriftedAccounts(ctx context.Context) ([]domain.AccountDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountDrift), args.Error(1)
}

func (m *MockReportingRepository) CountUnmirroredFundMovements(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
