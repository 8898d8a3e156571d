package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/sevacare/hospital_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// postingInput describes one entry to post inside an open transaction. The
// account must already be row-locked by the caller via GetAccountForUpdate or
// GetAccountByKindForUpdate; its cached Balance is the pre-entry balance the
// running balance is computed from.
type postingInput struct {
	Account        domain.Account
	Direction      domain.EntryDirection
	Amount         decimal.Decimal
	Category       string
	Narration      string
	TxnDate        time.Time
	Reference      domain.Reference
	AdjustmentSign int
}

// businessDate normalizes a timestamp to its business date (UTC midnight).
// Periods, sequences and as-of queries all key on this.
func businessDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// postEntry runs the single-entry pipeline: period guard, transaction number,
// running balance, entry insert, cached balance bump, and for fund movements
// the Main Account voucher mirror. Everything happens in the caller's
// transaction, so either the entry, the balance and the voucher all commit or
// none of them do.
func postEntry(ctx context.Context, tx portsrepo.LedgerTxRepository, in postingInput, actorID string, now time.Time) (domain.LedgerEntry, error) {
	if !in.Amount.IsPositive() {
		return domain.LedgerEntry{}, fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}

	txnDate := businessDate(in.TxnDate)

	finalized, err := tx.IsPeriodFinalized(ctx, txnDate)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("failed to check collection period: %w", err)
	}
	if finalized {
		return domain.LedgerEntry{}, fmt.Errorf("%w: collection for %s is finalized", apperrors.ErrPeriodLocked, txnDate.Format("2006-01-02"))
	}

	txnNumber, err := tx.NextSequenceNumber(ctx, domain.SeqTxn, txnDate)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("failed to allocate transaction number: %w", err)
	}

	sign := in.AdjustmentSign
	if sign == 0 {
		sign = 1
	}

	entry := domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		TxnNumber:      txnNumber,
		AccountID:      in.Account.AccountID,
		Direction:      in.Direction,
		Amount:         in.Amount,
		Category:       in.Category,
		Narration:      in.Narration,
		TxnDate:        txnDate,
		Reference:      in.Reference,
		AdjustmentSign: sign,
		CreatedAt:      now,
		CreatedBy:      actorID,
	}

	signed, err := accounting.SignedAmount(entry)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	entry.RunningBalance = in.Account.Balance.Add(signed)

	// Fund movements mirror into the Main Account before the entry is
	// written, so the entry row already carries its voucher link.
	var voucher *domain.Voucher
	var mainAccountID string
	if entry.Direction.IsFundMovement() {
		v, mainID, err := mirrorToMain(ctx, tx, in.Account, entry, now)
		if err != nil {
			return domain.LedgerEntry{}, err
		}
		voucher = v
		mainAccountID = mainID
		entry.VoucherNumber = &v.VoucherNumber
	}

	if err := tx.InsertEntry(ctx, entry); err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	if err := tx.AddToAccountBalance(ctx, in.Account.AccountID, signed, actorID, now); err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("failed to update account balance: %w", err)
	}
	if voucher != nil {
		if err := tx.InsertVoucher(ctx, *voucher); err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("failed to insert main account voucher: %w", err)
		}
		if err := tx.AddToAccountBalance(ctx, mainAccountID, voucher.SignedAmount(), actorID, now); err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("failed to update main account balance: %w", err)
		}
	}

	return entry, nil
}

// mirrorToMain locks the Main Account, allocates a voucher number and builds
// the voucher with its post-mirror running balance. The caller inserts the
// voucher and bumps the Main balance after the source entry is written.
// Returns the voucher and the Main Account's ID.
func mirrorToMain(ctx context.Context, tx portsrepo.LedgerTxRepository, sourceAccount domain.Account, entry domain.LedgerEntry, now time.Time) (*domain.Voucher, string, error) {
	main, err := tx.GetAccountByKindForUpdate(ctx, domain.KindMain)
	if err != nil {
		return nil, "", fmt.Errorf("failed to lock main account: %w", err)
	}

	voucherNumber, err := tx.NextSequenceNumber(ctx, domain.SeqVoucher, entry.TxnDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to allocate voucher number: %w", err)
	}

	voucher, err := accounting.BuildVoucher(sourceAccount, entry, voucherNumber, now)
	if err != nil {
		return nil, "", err
	}
	voucher.VoucherID = uuid.NewString()
	voucher.RunningBalance = main.Balance.Add(voucher.SignedAmount())

	return &voucher, main.AccountID, nil
}
