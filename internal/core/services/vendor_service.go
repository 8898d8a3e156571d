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
)

var (
	ErrPaidExceedsPurchase = errors.New("paid amount cannot exceed the purchase amount")
	ErrPayingKindRequired  = errors.New("a paying business line is required when paid amount is set")
	ErrVendorInactive      = errors.New("vendor is inactive")
)

// vendorService implements the per-vendor payable ledgers. Every mutation is
// a ledger posting on the vendor's backing account, so vendor history has the
// same immutability and numbering guarantees as the business line ledgers.
type vendorService struct {
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	vendorRepo portsrepo.VendorRepository
}

// NewVendorService creates a new VendorService.
func NewVendorService(ledgerRepo portsrepo.LedgerRepositoryWithTx, vendorRepo portsrepo.VendorRepository) portssvc.VendorSvcFacade {
	return &vendorService{
		ledgerRepo: ledgerRepo,
		vendorRepo: vendorRepo,
	}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor opens a payable ledger: a dedicated VENDOR account plus the
// vendor row, created in one transaction so the vendor number and account
// can never exist without each other.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, actorID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative; record an advance as a payment instead", apperrors.ErrValidation)
	}
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	var vendor domain.Vendor
	err := s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		vendorNumber, err := tx.NextSequenceNumber(ctx, domain.SeqVendor, now)
		if err != nil {
			return fmt.Errorf("failed to allocate vendor number: %w", err)
		}

		account := domain.Account{
			AccountID:      uuid.NewString(),
			Name:           req.Name,
			Kind:           domain.KindVendor,
			OpeningBalance: req.OpeningBalance,
			Balance:        req.OpeningBalance,
			IsActive:       true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if err := tx.InsertAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to create vendor account: %w", err)
		}

		vendor = domain.Vendor{
			VendorID:         uuid.NewString(),
			VendorNumber:     vendorNumber,
			AccountID:        account.AccountID,
			Name:             req.Name,
			ContactPhone:     req.ContactPhone,
			OpeningBalance:   req.OpeningBalance,
			BalanceType:      domain.BalanceTypeFor(req.OpeningBalance),
			CreditLimit:      req.CreditLimit,
			PaymentTermsDays: req.PaymentTermsDays,
			IsActive:         true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		return tx.InsertVendor(ctx, vendor)
	})
	if err != nil {
		logger.Error("Failed to create vendor", slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID), slog.String("vendor_number", vendor.VendorNumber))
	return &vendor, nil
}

// loadActiveVendor fetches the vendor row and rejects inactive ones.
func (s *vendorService) loadActiveVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrVendorInactive.Error())
	}
	return vendor, nil
}

// RecordPurchase books a PURCHASE on the vendor ledger, raising the due. An
// optional immediate part payment posts a FUND_OUT from the paying business
// line and a matching PAYMENT on the vendor ledger in the same transaction.
// Crossing the credit limit is flagged, not blocked.
func (s *vendorService) RecordPurchase(ctx context.Context, vendorID string, req dto.RecordPurchaseRequest, actorID string) (*portssvc.PurchaseResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor, err := s.loadActiveVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
	}
	if req.PaidAmount.GreaterThan(req.Amount) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaidExceedsPurchase.Error())
	}

	var payingKind domain.AccountKind
	if req.PaidAmount.IsPositive() {
		if req.PayingKind == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPayingKindRequired.Error())
		}
		payingKind, err = parseSubLedgerKind(req.PayingKind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	purchaseRef := domain.Reference{}
	if req.AssetID != "" {
		purchaseRef = domain.Reference{Type: domain.RefTypeFixedAsset, ID: req.AssetID}
	}

	now := time.Now().UTC()
	result := &portssvc.PurchaseResult{}
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		// Business line first, vendor second, Main last: the fixed lock
		// order shared by every posting path that touches a vendor.
		var payingAccount domain.Account
		if req.PaidAmount.IsPositive() {
			payingAccount, err = tx.GetAccountByKindForUpdate(ctx, payingKind)
			if err != nil {
				return fmt.Errorf("failed to lock %s account: %w", payingKind, err)
			}
		}
		vendorAccount, err := tx.GetAccountForUpdate(ctx, vendor.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock vendor account: %w", err)
		}

		purchase, err := postEntry(ctx, tx, postingInput{
			Account:   vendorAccount,
			Direction: domain.DirectionPurchase,
			Amount:    req.Amount,
			Category:  req.Category,
			Narration: req.Narration,
			TxnDate:   req.TxnDate,
			Reference: purchaseRef,
		}, actorID, now)
		if err != nil {
			return err
		}
		result.PurchaseEntry = purchase
		vendorBalance := purchase.RunningBalance

		if req.PaidAmount.IsPositive() {
			outEntry, err := postEntry(ctx, tx, postingInput{
				Account:   payingAccount,
				Direction: domain.DirectionFundOut,
				Amount:    req.PaidAmount,
				Category:  req.Category,
				Narration: fmt.Sprintf("Payment to %s", vendor.Name),
				TxnDate:   req.TxnDate,
				Reference: domain.Reference{Type: domain.RefTypeVendor, ID: vendor.VendorID},
			}, actorID, now)
			if err != nil {
				return err
			}
			result.PaymentEntry = &outEntry

			// Carry the purchase's running balance forward so the payment
			// entry folds on top of the entry just posted, not the stale
			// locked snapshot.
			vendorAccount.Balance = vendorBalance
			vendorPayment, err := postEntry(ctx, tx, postingInput{
				Account:   vendorAccount,
				Direction: domain.DirectionPayment,
				Amount:    req.PaidAmount,
				Category:  req.Category,
				Narration: req.Narration,
				TxnDate:   req.TxnDate,
				Reference: outEntry.Reference,
			}, actorID, now)
			if err != nil {
				return err
			}
			result.VendorPaymentEntry = &vendorPayment
			vendorBalance = vendorPayment.RunningBalance
		}

		if vendor.CreditLimit.IsPositive() && vendorBalance.GreaterThan(vendor.CreditLimit) {
			result.CreditLimitExceeded = true
		}
		return tx.UpdateVendorBalanceType(ctx, vendor.VendorID, domain.BalanceTypeFor(vendorBalance), actorID, now)
	})
	if err != nil {
		logger.Error("Failed to record purchase", slog.String("vendor_id", vendorID), slog.String("error", err.Error()))
		return nil, err
	}

	if result.CreditLimitExceeded {
		logger.Warn("Vendor credit limit exceeded", slog.String("vendor_id", vendorID), slog.String("credit_limit", vendor.CreditLimit.String()))
	}
	logger.Info("Purchase recorded", slog.String("vendor_id", vendorID), slog.String("txn_number", result.PurchaseEntry.TxnNumber), slog.String("amount", req.Amount.String()))
	return result, nil
}

// RecordPayment settles vendor dues: one FUND_OUT from the paying business
// line (mirrored to Main) and one PAYMENT on the vendor ledger, atomically.
// Paying more than the due flips the ledger into ADVANCE rather than failing.
func (s *vendorService) RecordPayment(ctx context.Context, vendorID string, req dto.RecordPaymentRequest, actorID string) (*portssvc.PaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor, err := s.loadActiveVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	payingKind, err := parseSubLedgerKind(req.PayingKind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	result := &portssvc.PaymentResult{}
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		payingAccount, err := tx.GetAccountByKindForUpdate(ctx, payingKind)
		if err != nil {
			return fmt.Errorf("failed to lock %s account: %w", payingKind, err)
		}
		vendorAccount, err := tx.GetAccountForUpdate(ctx, vendor.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock vendor account: %w", err)
		}

		ref := domain.Reference{Type: domain.RefTypeVendor, ID: vendor.VendorID}
		payingEntry, err := postEntry(ctx, tx, postingInput{
			Account:   payingAccount,
			Direction: domain.DirectionFundOut,
			Amount:    req.Amount,
			Category:  req.Category,
			Narration: fmt.Sprintf("Payment to %s", vendor.Name),
			TxnDate:   req.TxnDate,
			Reference: ref,
		}, actorID, now)
		if err != nil {
			return err
		}
		result.PayingEntry = payingEntry

		vendorEntry, err := postEntry(ctx, tx, postingInput{
			Account:   vendorAccount,
			Direction: domain.DirectionPayment,
			Amount:    req.Amount,
			Category:  req.Category,
			Narration: req.Narration,
			TxnDate:   req.TxnDate,
			Reference: ref,
		}, actorID, now)
		if err != nil {
			return err
		}
		result.VendorEntry = vendorEntry

		result.BalanceType = domain.BalanceTypeFor(vendorEntry.RunningBalance)
		return tx.UpdateVendorBalanceType(ctx, vendor.VendorID, result.BalanceType, actorID, now)
	})
	if err != nil {
		logger.Error("Failed to record vendor payment", slog.String("vendor_id", vendorID), slog.String("error", err.Error()))
		return nil, err
	}

	if result.BalanceType == domain.BalanceAdvance {
		logger.Warn("Vendor overpaid, balance now an advance", slog.String("vendor_id", vendorID), slog.String("balance", result.VendorEntry.RunningBalance.String()))
	}
	logger.Info("Vendor payment recorded", slog.String("vendor_id", vendorID), slog.String("txn_number", result.VendorEntry.TxnNumber), slog.String("amount", req.Amount.String()))
	return result, nil
}

// RecordAdjustment corrects a vendor balance with a signed ADJUSTMENT entry.
// The mandatory narration is the audit trail for why the books moved.
func (s *vendorService) RecordAdjustment(ctx context.Context, vendorID string, req dto.RecordAdjustmentRequest, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor, err := s.loadActiveVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if req.Narration == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNarrationRequired.Error())
	}

	adjustmentSign := 1
	if req.Decrease {
		adjustmentSign = -1
	}

	now := time.Now().UTC()
	var entry domain.LedgerEntry
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		vendorAccount, err := tx.GetAccountForUpdate(ctx, vendor.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock vendor account: %w", err)
		}
		entry, err = postEntry(ctx, tx, postingInput{
			Account:        vendorAccount,
			Direction:      domain.DirectionAdjustment,
			Amount:         req.Amount,
			Category:       req.Category,
			Narration:      req.Narration,
			TxnDate:        req.TxnDate,
			Reference:      domain.Reference{Type: domain.RefTypeVendor, ID: vendor.VendorID},
			AdjustmentSign: adjustmentSign,
		}, actorID, now)
		if err != nil {
			return err
		}
		return tx.UpdateVendorBalanceType(ctx, vendor.VendorID, domain.BalanceTypeFor(entry.RunningBalance), actorID, now)
	})
	if err != nil {
		logger.Error("Failed to record vendor adjustment", slog.String("vendor_id", vendorID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Vendor adjustment recorded", slog.String("vendor_id", vendorID), slog.String("txn_number", entry.TxnNumber), slog.Int("sign", adjustmentSign))
	return &entry, nil
}

// GetVendorByID retrieves one vendor with its live, log-derived balance.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*portsrepo.VendorWithBalance, error) {
	return s.vendorRepo.FindVendorWithBalance(ctx, vendorID)
}

// ListVendors retrieves all vendors with their balances.
func (s *vendorService) ListVendors(ctx context.Context) ([]portsrepo.VendorWithBalance, error) {
	return s.vendorRepo.ListVendors(ctx)
}
