package dto

import (
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherResponse is the outbound shape of a main-account voucher.
type VoucherResponse struct {
	VoucherID       string          `json:"voucherID"`
	VoucherNumber   string          `json:"voucherNumber"`
	VoucherType     string          `json:"voucherType"`
	Amount          decimal.Decimal `json:"amount"`
	VoucherDate     time.Time       `json:"voucherDate"`
	Narration       string          `json:"narration"`
	SourceAccount   string          `json:"sourceAccount"`
	SourceTxnType   string          `json:"sourceTxnType"`
	SourceTxnNumber string          `json:"sourceTxnNumber"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SweepResponse reports the outcome of a consolidation sweep run.
type SweepResponse struct {
	Scanned  int               `json:"scanned"`
	Repaired int               `json:"repaired"`
	Vouchers []VoucherResponse `json:"vouchers"`
}

// ToVoucherResponse converts a domain voucher to its outbound shape.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:       v.VoucherID,
		VoucherNumber:   v.VoucherNumber,
		VoucherType:     string(v.Type),
		Amount:          v.Amount,
		VoucherDate:     v.Date,
		Narration:       v.Narration,
		SourceAccount:   v.SourceAccount,
		SourceTxnType:   v.SourceTxnType,
		SourceTxnNumber: v.SourceTxnNumber,
		RunningBalance:  v.RunningBalance,
		CreatedAt:       v.CreatedAt,
	}
}
