package mapping

import (
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/models"
)

// ToModelLedgerEntry converts a domain entry for DB storage.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		TxnNumber:      d.TxnNumber,
		AccountID:      d.AccountID,
		Direction:      models.EntryDirection(d.Direction),
		Amount:         d.Amount,
		Category:       d.Category,
		Narration:      d.Narration,
		TxnDate:        d.TxnDate,
		ReferenceType:  d.Reference.Type,
		ReferenceID:    d.Reference.ID,
		VoucherNumber:  d.VoucherNumber,
		RunningBalance: d.RunningBalance,
		AdjustmentSign: d.AdjustmentSign,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a DB entry row to the domain shape.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        m.EntryID,
		TxnNumber:      m.TxnNumber,
		AccountID:      m.AccountID,
		Direction:      domain.EntryDirection(m.Direction),
		Amount:         m.Amount,
		Category:       m.Category,
		Narration:      m.Narration,
		TxnDate:        m.TxnDate,
		Reference:      domain.Reference{Type: m.ReferenceType, ID: m.ReferenceID},
		VoucherNumber:  m.VoucherNumber,
		RunningBalance: m.RunningBalance,
		AdjustmentSign: m.AdjustmentSign,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of DB entry rows.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
