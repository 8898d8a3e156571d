package repositories

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherRepository provides read access to the Main Account voucher stream.
// Vouchers are only ever written inside ledger posting transactions.
type VoucherRepository interface {
	FindVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error)
	FindVoucherBySourceTxn(ctx context.Context, sourceTxnNumber string) (*domain.Voucher, error)
	// ListVouchers returns all vouchers dated within [from, to] in posting
	// order, plus the Main Account balance just before the range.
	ListVouchers(ctx context.Context, from, to time.Time) ([]domain.Voucher, decimal.Decimal, error)
}
