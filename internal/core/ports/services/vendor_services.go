package services

import (
	"context"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/sevacare/hospital_finance_app/internal/dto"
)

// VendorReaderSvc defines read operations for vendor ledgers.
type VendorReaderSvc interface {
	GetVendorByID(ctx context.Context, vendorID string) (*repositories.VendorWithBalance, error)
	ListVendors(ctx context.Context) ([]repositories.VendorWithBalance, error)
}

// PurchaseResult reports the entries a purchase produced and whether the
// vendor's due crossed its credit limit. The limit is advisory; the
// purchase posts either way.
type PurchaseResult struct {
	PurchaseEntry       domain.LedgerEntry
	PaymentEntry        *domain.LedgerEntry
	VendorPaymentEntry  *domain.LedgerEntry
	CreditLimitExceeded bool
}

// PaymentResult reports the entry pair a vendor payment produced.
type PaymentResult struct {
	PayingEntry domain.LedgerEntry
	VendorEntry domain.LedgerEntry
	BalanceType domain.VendorBalanceType
}

// VendorWriterSvc defines write operations for vendor ledgers.
type VendorWriterSvc interface {
	// CreateVendor opens a payable ledger backed by a dedicated account.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, actorID string) (*domain.Vendor, error)

	// RecordPurchase books a PURCHASE on the vendor ledger, optionally with
	// an immediate part payment from a business line, all in one transaction.
	RecordPurchase(ctx context.Context, vendorID string, req dto.RecordPurchaseRequest, actorID string) (*PurchaseResult, error)

	// RecordPayment settles vendor dues: FUND_OUT from the paying business
	// line plus PAYMENT on the vendor ledger, atomically. Overpayment flips
	// the ledger into ADVANCE.
	RecordPayment(ctx context.Context, vendorID string, req dto.RecordPaymentRequest, actorID string) (*PaymentResult, error)

	// RecordAdjustment corrects a vendor balance with a signed ADJUSTMENT
	// entry. Narration is mandatory.
	RecordAdjustment(ctx context.Context, vendorID string, req dto.RecordAdjustmentRequest, actorID string) (*domain.LedgerEntry, error)
}

// VendorSvcFacade combines the vendor service interfaces.
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
