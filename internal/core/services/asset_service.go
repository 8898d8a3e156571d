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
	ErrPaymentExceedsDue = errors.New("payment exceeds the asset's remaining due")
	ErrAssetNotActive    = errors.New("asset is not accepting payments")
	ErrPaidExceedsCost   = errors.New("paid amount cannot exceed the total cost")
)

// assetService implements the fixed asset register. Acquisitions and
// instalments post real ledger entries; the register rows carry the
// paid/due rollup the entries imply.
type assetService struct {
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	assetRepo  portsrepo.AssetRepository
	vendorRepo portsrepo.VendorRepository
}

// NewAssetService creates a new AssetService.
func NewAssetService(ledgerRepo portsrepo.LedgerRepositoryWithTx, assetRepo portsrepo.AssetRepository, vendorRepo portsrepo.VendorRepository) portssvc.AssetSvcFacade {
	return &assetService{
		ledgerRepo: ledgerRepo,
		assetRepo:  assetRepo,
		vendorRepo: vendorRepo,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// AcquireAsset registers a fixed asset. Bought on vendor credit it books a
// PURCHASE on the vendor ledger referencing the asset, so the outstanding
// cost shows up as a liability. A down payment posts FUND_OUT from the
// funding business line (and PAYMENT on the vendor, if any) in the same
// transaction. Paying above the total cost is rejected.
func (s *assetService) AcquireAsset(ctx context.Context, req dto.AcquireAssetRequest, actorID string) (*portssvc.AcquisitionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fundingKind, err := parseSubLedgerKind(req.FundingKind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
	}
	if req.PaidAmount.GreaterThan(req.TotalCost) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaidExceedsCost.Error())
	}

	payingKind := fundingKind
	if req.PayingKind != "" {
		payingKind, err = parseSubLedgerKind(req.PayingKind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	var vendor *domain.Vendor
	if req.VendorID != "" {
		vendor, err = s.vendorRepo.FindVendorByID(ctx, req.VendorID)
		if err != nil {
			return nil, err
		}
		if !vendor.IsActive {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrVendorInactive.Error())
		}
	} else if req.PaidAmount.LessThan(req.TotalCost) {
		return nil, fmt.Errorf("%w: a partially paid asset needs a vendor to owe the balance to", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	result := &portssvc.AcquisitionResult{}
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		assetNumber, err := tx.NextSequenceNumber(ctx, domain.SeqAsset, now)
		if err != nil {
			return fmt.Errorf("failed to allocate asset number: %w", err)
		}

		asset := domain.FixedAsset{
			AssetID:      uuid.NewString(),
			AssetNumber:  assetNumber,
			Name:         req.Name,
			TotalCost:    req.TotalCost,
			PaidAmount:   req.PaidAmount,
			DueAmount:    req.TotalCost.Sub(req.PaidAmount),
			PurchaseDate: businessDate(req.TxnDate),
			FundingKind:  fundingKind,
			Status:       domain.AssetActive,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if vendor != nil {
			asset.VendorID = &vendor.VendorID
		}
		if asset.DueAmount.IsZero() {
			asset.Status = domain.AssetFullyPaid
		}

		assetRef := domain.Reference{Type: domain.RefTypeFixedAsset, ID: asset.AssetID}

		var payingAccount domain.Account
		if req.PaidAmount.IsPositive() {
			payingAccount, err = tx.GetAccountByKindForUpdate(ctx, payingKind)
			if err != nil {
				return fmt.Errorf("failed to lock %s account: %w", payingKind, err)
			}
		}

		if vendor != nil {
			vendorAccount, err := tx.GetAccountForUpdate(ctx, vendor.AccountID)
			if err != nil {
				return fmt.Errorf("failed to lock vendor account: %w", err)
			}
			purchase, err := postEntry(ctx, tx, postingInput{
				Account:   vendorAccount,
				Direction: domain.DirectionPurchase,
				Amount:    req.TotalCost,
				Category:  "Fixed Asset Purchase",
				Narration: req.Name,
				TxnDate:   req.TxnDate,
				Reference: assetRef,
			}, actorID, now)
			if err != nil {
				return err
			}
			result.PurchaseEntry = &purchase

			if req.PaidAmount.IsPositive() {
				outEntry, err := postEntry(ctx, tx, postingInput{
					Account:   payingAccount,
					Direction: domain.DirectionFundOut,
					Amount:    req.PaidAmount,
					Category:  "Fixed Asset Payment",
					Narration: fmt.Sprintf("Down payment for %s", req.Name),
					TxnDate:   req.TxnDate,
					Reference: assetRef,
				}, actorID, now)
				if err != nil {
					return err
				}
				result.PaymentEntry = &outEntry

				vendorAccount.Balance = purchase.RunningBalance
				vendorPayment, err := postEntry(ctx, tx, postingInput{
					Account:   vendorAccount,
					Direction: domain.DirectionPayment,
					Amount:    req.PaidAmount,
					Category:  "Fixed Asset Payment",
					Narration: req.Name,
					TxnDate:   req.TxnDate,
					Reference: assetRef,
				}, actorID, now)
				if err != nil {
					return err
				}
				balanceType := domain.BalanceTypeFor(vendorPayment.RunningBalance)
				if err := tx.UpdateVendorBalanceType(ctx, vendor.VendorID, balanceType, actorID, now); err != nil {
					return err
				}
			}
		} else if req.PaidAmount.IsPositive() {
			// Bought outright: one FUND_OUT referencing the asset, no
			// vendor leg.
			outEntry, err := postEntry(ctx, tx, postingInput{
				Account:   payingAccount,
				Direction: domain.DirectionFundOut,
				Amount:    req.PaidAmount,
				Category:  "Fixed Asset Purchase",
				Narration: req.Name,
				TxnDate:   req.TxnDate,
				Reference: assetRef,
			}, actorID, now)
			if err != nil {
				return err
			}
			result.PaymentEntry = &outEntry
		}

		if err := tx.InsertAsset(ctx, asset); err != nil {
			return fmt.Errorf("failed to insert asset: %w", err)
		}
		result.Asset = asset
		return nil
	})
	if err != nil {
		logger.Error("Failed to acquire asset", slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Asset acquired", slog.String("asset_number", result.Asset.AssetNumber), slog.String("total_cost", req.TotalCost.String()), slog.String("due", result.Asset.DueAmount.String()))
	return result, nil
}

// ApplyPayment applies an instalment towards an asset's due. The payment
// posts FUND_OUT from the paying business line and, for vendor-financed
// assets, PAYMENT on the vendor ledger. Overpaying the due is rejected;
// clearing it sets the asset FULLY_PAID.
func (s *assetService) ApplyPayment(ctx context.Context, assetID string, req dto.AssetPaymentRequest, actorID string) (*domain.FixedAsset, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payingKind, err := parseSubLedgerKind(req.PayingKind)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	var updated domain.FixedAsset
	var payEntry domain.LedgerEntry
	err = s.ledgerRepo.WithTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTxRepository) error {
		payingAccount, err := tx.GetAccountByKindForUpdate(ctx, payingKind)
		if err != nil {
			return fmt.Errorf("failed to lock %s account: %w", payingKind, err)
		}
		asset, err := tx.GetAssetForUpdate(ctx, assetID)
		if err != nil {
			return fmt.Errorf("failed to lock asset %s: %w", assetID, err)
		}
		if asset.Status == domain.AssetInactive {
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrAssetNotActive.Error())
		}
		if req.Amount.GreaterThan(asset.DueAmount) {
			return fmt.Errorf("%w: %s (due %s, payment %s)", apperrors.ErrValidation, ErrPaymentExceedsDue.Error(), asset.DueAmount.String(), req.Amount.String())
		}

		assetRef := domain.Reference{Type: domain.RefTypeFixedAsset, ID: asset.AssetID}
		payEntry, err = postEntry(ctx, tx, postingInput{
			Account:   payingAccount,
			Direction: domain.DirectionFundOut,
			Amount:    req.Amount,
			Category:  "Fixed Asset Payment",
			Narration: req.Narration,
			TxnDate:   req.TxnDate,
			Reference: assetRef,
		}, actorID, now)
		if err != nil {
			return err
		}

		if asset.VendorID != nil {
			vendor, err := s.vendorRepo.FindVendorByID(ctx, *asset.VendorID)
			if err != nil {
				return fmt.Errorf("failed to load vendor %s: %w", *asset.VendorID, err)
			}
			vendorAccount, err := tx.GetAccountForUpdate(ctx, vendor.AccountID)
			if err != nil {
				return fmt.Errorf("failed to lock vendor account: %w", err)
			}
			vendorPayment, err := postEntry(ctx, tx, postingInput{
				Account:   vendorAccount,
				Direction: domain.DirectionPayment,
				Amount:    req.Amount,
				Category:  "Fixed Asset Payment",
				Narration: req.Narration,
				TxnDate:   req.TxnDate,
				Reference: assetRef,
			}, actorID, now)
			if err != nil {
				return err
			}
			if err := tx.UpdateVendorBalanceType(ctx, *asset.VendorID, domain.BalanceTypeFor(vendorPayment.RunningBalance), actorID, now); err != nil {
				return err
			}
		}

		paid := asset.PaidAmount.Add(req.Amount)
		due := asset.DueAmount.Sub(req.Amount)
		status := asset.Status
		if due.IsZero() {
			status = domain.AssetFullyPaid
		}
		if err := tx.UpdateAssetPayment(ctx, asset.AssetID, paid, due, status, actorID, now); err != nil {
			return fmt.Errorf("failed to update asset payment: %w", err)
		}

		updated = asset
		updated.PaidAmount = paid
		updated.DueAmount = due
		updated.Status = status
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = actorID
		return nil
	})
	if err != nil {
		logger.Error("Failed to apply asset payment", slog.String("asset_id", assetID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Asset payment applied", slog.String("asset_id", assetID), slog.String("amount", req.Amount.String()), slog.String("remaining_due", updated.DueAmount.String()), slog.String("status", string(updated.Status)))
	return &updated, &payEntry, nil
}

// GetAssetByID retrieves one asset.
func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	return s.assetRepo.FindAssetByID(ctx, assetID)
}

// ListAssets retrieves the full register.
func (s *assetService) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	return s.assetRepo.ListAssets(ctx)
}
