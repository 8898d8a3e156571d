package services

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// ConsolidationReaderSvc defines read operations over the Main Account
// voucher stream.
type ConsolidationReaderSvc interface {
	// GetVoucherByNumber retrieves one voucher.
	GetVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error)

	// GetVoucherBySourceTxn retrieves the voucher mirroring a source
	// transaction, or ErrNotFound if the movement was never mirrored.
	GetVoucherBySourceTxn(ctx context.Context, sourceTxnNumber string) (*domain.Voucher, error)

	// ListVouchers returns the vouchers dated within [from, to] in posting
	// order.
	ListVouchers(ctx context.Context, from, to time.Time) ([]domain.Voucher, error)
}

// ConsolidationWriterSvc defines the repair-side of consolidation. Normal
// mirroring happens inline in the posting transaction; the sweep exists for
// rows that predate mirroring or were imported out of band.
type ConsolidationWriterSvc interface {
	// SweepUnmirrored finds committed fund movements with no voucher and
	// mirrors each in its own transaction. Partial progress survives an
	// individual failure.
	SweepUnmirrored(ctx context.Context, limit int, actorID string) (scanned int, repaired []domain.Voucher, err error)
}

// ConsolidationSvcFacade combines the consolidation service interfaces.
type ConsolidationSvcFacade interface {
	ConsolidationReaderSvc
	ConsolidationWriterSvc
}
