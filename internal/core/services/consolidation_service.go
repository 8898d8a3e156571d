package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
)

// consolidationService serves the Main Account voucher stream and repairs
// fund movements that somehow committed without a voucher (legacy imports,
// rows written before mirroring existed). The normal path never needs the
// sweep: mirroring happens inline in the posting transaction.
type consolidationService struct {
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	voucherRepo portsrepo.VoucherRepository
}

// NewConsolidationService creates a new ConsolidationService.
func NewConsolidationService(ledgerRepo portsrepo.LedgerRepositoryWithTx, voucherRepo portsrepo.VoucherRepository) portssvc.ConsolidationSvcFacade {
	return &consolidationService{
		ledgerRepo:  ledgerRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.ConsolidationSvcFacade = (*consolidationService)(nil)

// GetVoucherByNumber retrieves one voucher.
func (s *consolidationService) GetVoucherByNumber(ctx context.Context, voucherNumber string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByNumber(ctx, voucherNumber)
}

// GetVoucherBySourceTxn retrieves the voucher mirroring a source transaction.
func (s *consolidationService) GetVoucherBySourceTxn(ctx context.Context, sourceTxnNumber string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherBySourceTxn(ctx, sourceTxnNumber)
}

// ListVouchers returns the vouchers dated within [from, to] in posting order.
func (s *consolidationService) ListVouchers(ctx context.Context, from, to time.Time) ([]domain.Voucher, error) {
	vouchers, _, err := s.voucherRepo.ListVouchers(ctx, businessDate(from), businessDate(to))
	return vouchers, err
}

// SweepUnmirrored finds committed fund movements with no Main Account
// voucher and mirrors each in its own transaction, so one bad row cannot
// block the rest. Each repair re-checks for an existing voucher under the
// lock, making the sweep safe to run concurrently with itself.
func (s *consolidationService) SweepUnmirrored(ctx context.Context, limit int, actorID string) (int, []domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	unmirrored, err := s.ledgerRepo.FindUnmirroredFundMovements(ctx, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to find unmirrored fund movements: %w", err)
	}

	repaired := make([]domain.Voucher, 0, len(unmirrored))
	for _, entry := range unmirrored {
		voucher, err := s.repairOne(ctx, entry, actorID)
		if err != nil {
			logger.Error("Failed to repair unmirrored fund movement", slog.String("entry_id", entry.EntryID), slog.String("txn_number", entry.TxnNumber), slog.String("error", err.Error()))
			continue
		}
		if voucher != nil {
			repaired = append(repaired, *voucher)
		}
	}

	logger.Info("Consolidation sweep finished", slog.Int("scanned", len(unmirrored)), slog.Int("repaired", len(repaired)))
	return len(unmirrored), repaired, nil
}

// repairOne mirrors a single fund movement. Returns nil without error when
// another writer mirrored it first.
func (s *consolidationService) repairOne(ctx context.Context, entry domain.LedgerEntry, actorID string) (*domain.Voucher, error) {
	now := time.Now().UTC()
	var repaired *domain.Voucher
	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		existing, err := tx.FindVoucherBySourceTxn(ctx, entry.TxnNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			// Already mirrored; just restore the entry link if missing.
			if entry.VoucherNumber == nil {
				return tx.SetEntryVoucherNumber(ctx, entry.EntryID, existing.VoucherNumber)
			}
			return nil
		}

		sourceAccount, err := tx.GetAccountForUpdate(ctx, entry.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock source account: %w", err)
		}

		voucher, mainAccountID, err := mirrorToMain(ctx, tx, sourceAccount, entry, now)
		if err != nil {
			return err
		}
		voucher.CreatedBy = actorID
		if err := tx.InsertVoucher(ctx, *voucher); err != nil {
			return fmt.Errorf("failed to insert voucher: %w", err)
		}
		if err := tx.AddToAccountBalance(ctx, mainAccountID, voucher.SignedAmount(), actorID, now); err != nil {
			return fmt.Errorf("failed to update main account balance: %w", err)
		}
		if err := tx.SetEntryVoucherNumber(ctx, entry.EntryID, voucher.VoucherNumber); err != nil {
			return fmt.Errorf("failed to link entry to voucher: %w", err)
		}

		repaired = voucher
		return nil
	})
	return repaired, err
}
