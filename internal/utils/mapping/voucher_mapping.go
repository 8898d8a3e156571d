package mapping

import (
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/models"
)

// ToModelVoucher converts a domain voucher for DB storage.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:       d.VoucherID,
		VoucherNumber:   d.VoucherNumber,
		VoucherType:     models.VoucherType(d.Type),
		VoucherDate:     d.Date,
		Narration:       d.Narration,
		Amount:          d.Amount,
		SourceAccount:   d.SourceAccount,
		SourceTxnType:   d.SourceTxnType,
		SourceTxnNumber: d.SourceTxnNumber,
		SourceRefType:   d.SourceReference.Type,
		SourceRefID:     d.SourceReference.ID,
		RunningBalance:  d.RunningBalance,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainVoucher converts a DB voucher row to the domain shape.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:       m.VoucherID,
		VoucherNumber:   m.VoucherNumber,
		Type:            domain.VoucherType(m.VoucherType),
		Date:            m.VoucherDate,
		Narration:       m.Narration,
		Amount:          m.Amount,
		SourceAccount:   m.SourceAccount,
		SourceTxnType:   m.SourceTxnType,
		SourceTxnNumber: m.SourceTxnNumber,
		SourceReference: domain.Reference{Type: m.SourceRefType, ID: m.SourceRefID},
		RunningBalance:  m.RunningBalance,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainVoucherSlice converts a slice of DB voucher rows.
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	out := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		out[i] = ToDomainVoucher(m)
	}
	return out
}
