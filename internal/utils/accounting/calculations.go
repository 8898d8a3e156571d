package accounting

import (
	"fmt"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign convention for an entry's effect on its
// account balance. Amounts are stored positive; the direction carries the
// sign semantics. Used by both the posting path and the recompute-from-log
// path so the cached balance and historical balances can never diverge
// through divergent logic.
//
// INCOME / FUND_IN / PURCHASE   -> positive
// EXPENSE / FUND_OUT / PAYMENT  -> negative
// ADJUSTMENT                    -> sign carried by the entry itself
func SignedAmount(entry domain.LedgerEntry) (decimal.Decimal, error) {
	switch entry.Direction {
	case domain.DirectionIncome, domain.DirectionFundIn, domain.DirectionPurchase:
		return entry.Amount, nil
	case domain.DirectionExpense, domain.DirectionFundOut, domain.DirectionPayment:
		return entry.Amount.Neg(), nil
	case domain.DirectionAdjustment:
		if entry.AdjustmentSign < 0 {
			return entry.Amount.Neg(), nil
		}
		return entry.Amount, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown entry direction '%s' for entry %s", entry.Direction, entry.EntryID)
	}
}

// ComputeBalance folds an account's entry log into a balance. This is the
// pure "recompute from log" function behind both the cache refresh and
// balance-as-of queries.
func ComputeBalance(openingBalance decimal.Decimal, entries []domain.LedgerEntry) (decimal.Decimal, error) {
	balance := openingBalance
	for _, entry := range entries {
		signed, err := SignedAmount(entry)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

// VoucherTypeFor maps a fund movement direction to the Main Account voucher
// side: fund-in is mirrored as a Credit, fund-out as a Debit.
func VoucherTypeFor(direction domain.EntryDirection) (domain.VoucherType, error) {
	switch direction {
	case domain.DirectionFundIn:
		return domain.VoucherCredit, nil
	case domain.DirectionFundOut:
		return domain.VoucherDebit, nil
	default:
		return "", fmt.Errorf("direction %s is not a fund movement", direction)
	}
}

// BuildVoucher constructs the Main Account voucher mirroring a fund movement
// entry, preserving the amount exactly and keeping the full back-reference to
// the source transaction. The voucher number must already be allocated.
func BuildVoucher(sourceAccount domain.Account, entry domain.LedgerEntry, voucherNumber string, now time.Time) (domain.Voucher, error) {
	vType, err := VoucherTypeFor(entry.Direction)
	if err != nil {
		return domain.Voucher{}, err
	}
	narration := entry.Category
	if entry.Narration != "" {
		narration = fmt.Sprintf("%s - %s", entry.Category, entry.Narration)
	}
	return domain.Voucher{
		VoucherNumber:   voucherNumber,
		Type:            vType,
		Date:            entry.TxnDate,
		Narration:       narration,
		Amount:          entry.Amount,
		SourceAccount:   sourceAccount.Name,
		SourceTxnType:   string(entry.Direction),
		SourceTxnNumber: entry.TxnNumber,
		SourceReference: entry.Reference,
		CreatedAt:       now,
		CreatedBy:       entry.CreatedBy,
	}, nil
}
