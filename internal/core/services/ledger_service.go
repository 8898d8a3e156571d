package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sevacare/hospital_finance_app/internal/apperrors"
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownAccountKind  = errors.New("unknown account kind")
	ErrVendorDirection     = errors.New("purchase and payment entries are posted through the vendor ledger")
	ErrSameAccountTransfer = errors.New("transfer requires two different business lines")
	ErrReversalOfReversal  = errors.New("a reversing entry cannot itself be reversed")
	ErrVendorReversal      = errors.New("vendor ledger entries are corrected through vendor adjustments")
	ErrNarrationRequired   = errors.New("narration is required for adjustments")
)

// ledgerService implements posting and reading for the business line ledgers.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	accountRepo portsrepo.AccountRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryWithTx, accountRepo portsrepo.AccountRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// parseSubLedgerKind validates that the request names a cash-holding
// business line.
func parseSubLedgerKind(raw string) (domain.AccountKind, error) {
	kind := domain.AccountKind(raw)
	if !kind.IsSubLedger() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountKind, raw)
	}
	return kind, nil
}

// parsePostableDirection validates a direction accepted by RecordEntry.
func parsePostableDirection(raw string) (domain.EntryDirection, error) {
	direction := domain.EntryDirection(raw)
	switch direction {
	case domain.DirectionIncome, domain.DirectionExpense,
		domain.DirectionFundIn, domain.DirectionFundOut,
		domain.DirectionAdjustment:
		return direction, nil
	case domain.DirectionPurchase, domain.DirectionPayment:
		return "", ErrVendorDirection
	default:
		return "", fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, raw)
	}
}

// RecordEntry posts one entry to a business line account inside a single
// transaction. Fund movements additionally mirror a Main Account voucher.
func (s *ledgerService) RecordEntry(ctx context.Context, req dto.RecordEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind, err := parseSubLedgerKind(req.AccountKind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	direction, err := parsePostableDirection(req.Direction)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if direction == domain.DirectionAdjustment && req.Narration == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNarrationRequired.Error())
	}

	adjustmentSign := 1
	if direction == domain.DirectionAdjustment && req.Decrease {
		adjustmentSign = -1
	}

	now := time.Now().UTC()
	var entry domain.LedgerEntry
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		account, err := tx.GetAccountByKindForUpdate(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to lock %s account: %w", kind, err)
		}
		entry, err = postEntry(ctx, tx, postingInput{
			Account:        account,
			Direction:      direction,
			Amount:         req.Amount,
			Category:       req.Category,
			Narration:      req.Narration,
			TxnDate:        req.TxnDate,
			Reference:      domain.Reference{Type: req.ReferenceType, ID: req.ReferenceID},
			AdjustmentSign: adjustmentSign,
		}, actorID, now)
		return err
	})
	if err != nil {
		logger.Error("Failed to record ledger entry", slog.String("account_kind", string(kind)), slog.String("direction", string(direction)), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Ledger entry recorded", slog.String("txn_number", entry.TxnNumber), slog.String("account_kind", string(kind)), slog.String("direction", string(direction)), slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// ReverseEntry posts the opposite of an existing entry on the same account,
// linked back via a LEDGER_ENTRY reference. The original row is untouched and
// keeps its transaction number.
func (s *ledgerService) ReverseEntry(ctx context.Context, entryID string, narration string, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	var reversal domain.LedgerEntry
	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		original, err := tx.FindEntryByID(ctx, entryID)
		if err != nil {
			return fmt.Errorf("failed to load entry %s: %w", entryID, err)
		}
		if original.Reference.Type == domain.RefTypeLedgerEntry {
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrReversalOfReversal.Error())
		}

		account, err := tx.GetAccountForUpdate(ctx, original.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock account %s: %w", original.AccountID, err)
		}
		// A mirrored payment or purchase cannot be undone here without
		// leaving the vendor's due/advance state and retained earnings out
		// of step; the vendor ledger has its own adjustment operation.
		if account.Kind == domain.KindVendor {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrVendorReversal.Error())
		}

		in := postingInput{
			Account:   account,
			Direction: original.Direction.Opposite(),
			Amount:    original.Amount,
			Category:  original.Category,
			Narration: narration,
			TxnDate:   now,
			Reference: domain.Reference{Type: domain.RefTypeLedgerEntry, ID: original.EntryID},
		}
		// Reversing an adjustment flips its sign instead of its direction.
		if original.Direction == domain.DirectionAdjustment {
			in.Direction = domain.DirectionAdjustment
			in.AdjustmentSign = -original.AdjustmentSign
		}

		reversal, err = postEntry(ctx, tx, in, actorID, now)
		return err
	})
	if err != nil {
		logger.Error("Failed to reverse entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Entry reversed", slog.String("original_entry_id", entryID), slog.String("reversal_txn_number", reversal.TxnNumber))
	return &reversal, nil
}

// Transfer posts a FUND_OUT from one business line and a FUND_IN to another
// in one transaction. Both legs carry the same FUND_TRANSFER reference and
// each mirrors its own Main Account voucher, which net to zero.
func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest, actorID string) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fromKind, err := parseSubLedgerKind(req.FromKind)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	toKind, err := parseSubLedgerKind(req.ToKind)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if fromKind == toKind {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSameAccountTransfer.Error())
	}

	transferRef := domain.Reference{Type: domain.RefTypeTransfer, ID: uuid.NewString()}
	now := time.Now().UTC()

	var outEntry, inEntry domain.LedgerEntry
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		// Lock both business lines in a fixed order so concurrent transfers
		// between the same pair cannot deadlock.
		firstKind, secondKind := fromKind, toKind
		if secondKind < firstKind {
			firstKind, secondKind = secondKind, firstKind
		}
		first, err := tx.GetAccountByKindForUpdate(ctx, firstKind)
		if err != nil {
			return fmt.Errorf("failed to lock %s account: %w", firstKind, err)
		}
		second, err := tx.GetAccountByKindForUpdate(ctx, secondKind)
		if err != nil {
			return fmt.Errorf("failed to lock %s account: %w", secondKind, err)
		}

		fromAccount, toAccount := first, second
		if fromAccount.Kind != fromKind {
			fromAccount, toAccount = second, first
		}

		outEntry, err = postEntry(ctx, tx, postingInput{
			Account:   fromAccount,
			Direction: domain.DirectionFundOut,
			Amount:    req.Amount,
			Category:  req.Category,
			Narration: req.Narration,
			TxnDate:   req.TxnDate,
			Reference: transferRef,
		}, actorID, now)
		if err != nil {
			return err
		}

		inEntry, err = postEntry(ctx, tx, postingInput{
			Account:   toAccount,
			Direction: domain.DirectionFundIn,
			Amount:    req.Amount,
			Category:  req.Category,
			Narration: req.Narration,
			TxnDate:   req.TxnDate,
			Reference: transferRef,
		}, actorID, now)
		return err
	})
	if err != nil {
		logger.Error("Failed to transfer funds", slog.String("from", string(fromKind)), slog.String("to", string(toKind)), slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Funds transferred", slog.String("from", string(fromKind)), slog.String("to", string(toKind)), slog.String("amount", req.Amount.String()), slog.String("transfer_id", transferRef.ID))
	return &outEntry, &inEntry, nil
}

// GetEntryByID retrieves one entry.
func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

// GetEntryByTxnNumber retrieves one entry by its transaction number.
func (s *ledgerService) GetEntryByTxnNumber(ctx context.Context, txnNumber string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByTxnNumber(ctx, txnNumber)
}

// ListEntries retrieves one page of an account's entries, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ledgerRepo.ListEntriesByAccount(ctx, accountID, limit, nextToken)
}

// BalanceAsOf folds the entry log to the balance at end of the given
// business date, ignoring the cached balance entirely.
func (s *ledgerService) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	return s.ledgerRepo.BalanceAsOf(ctx, accountID, businessDate(asOf))
}

// GetAccountByID retrieves one account.
func (s *ledgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountByKind retrieves the singleton account of a non-vendor kind.
func (s *ledgerService) GetAccountByKind(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	return s.accountRepo.FindAccountByKind(ctx, kind)
}

// ListAccounts retrieves all accounts.
func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
