package dto

import (
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVendorRequest opens a payable ledger for a supplier.
type CreateVendorRequest struct {
	Name             string          `json:"name" binding:"required"`
	ContactPhone     string          `json:"contactPhone"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	PaymentTermsDays int             `json:"paymentTermsDays"`
}

// RecordPurchaseRequest books a credit purchase against a vendor,
// optionally with an immediate part payment from a business line.
type RecordPurchaseRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	PayingKind      string          `json:"payingKind"`
	Category        string          `json:"category" binding:"required"`
	Narration       string          `json:"narration"`
	TxnDate         time.Time       `json:"txnDate" binding:"required"`
	AssetID         string          `json:"assetID"`
}

// RecordPaymentRequest settles vendor dues from a business line account.
type RecordPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	PayingKind string          `json:"payingKind" binding:"required"`
	Category   string          `json:"category" binding:"required"`
	Narration  string          `json:"narration"`
	TxnDate    time.Time       `json:"txnDate" binding:"required"`
}

// RecordAdjustmentRequest corrects a vendor balance in either direction.
type RecordAdjustmentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Decrease  bool            `json:"decrease"`
	Category  string          `json:"category" binding:"required"`
	Narration string          `json:"narration" binding:"required"`
	TxnDate   time.Time       `json:"txnDate" binding:"required"`
}

// VendorResponse is the outbound shape of a vendor with its live balance.
type VendorResponse struct {
	VendorID         string          `json:"vendorID"`
	VendorNumber     string          `json:"vendorNumber"`
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	ContactPhone     string          `json:"contactPhone,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceType      string          `json:"balanceType"`
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	PaymentTermsDays int             `json:"paymentTermsDays"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PurchaseResponse reports the entries produced by a purchase and
// whether the vendor went over its credit limit.
type PurchaseResponse struct {
	PurchaseEntry       EntryResponse  `json:"purchaseEntry"`
	PaymentEntry        *EntryResponse `json:"paymentEntry,omitempty"`
	VendorPaymentEntry  *EntryResponse `json:"vendorPaymentEntry,omitempty"`
	CreditLimitExceeded bool           `json:"creditLimitExceeded"`
}

// PaymentResponse reports the pair of entries produced by a vendor payment.
type PaymentResponse struct {
	PayingEntry EntryResponse `json:"payingEntry"`
	VendorEntry EntryResponse `json:"vendorEntry"`
	BalanceType string        `json:"balanceType"`
}

// ToVendorResponse converts a vendor and its computed balance.
func ToVendorResponse(v *domain.Vendor, balance decimal.Decimal) VendorResponse {
	return VendorResponse{
		VendorID:         v.VendorID,
		VendorNumber:     v.VendorNumber,
		AccountID:        v.AccountID,
		Name:             v.Name,
		ContactPhone:     v.ContactPhone,
		Balance:          balance,
		BalanceType:      string(domain.BalanceTypeFor(balance)),
		CreditLimit:      v.CreditLimit,
		PaymentTermsDays: v.PaymentTermsDays,
		IsActive:         v.IsActive,
		CreatedAt:        v.CreatedAt,
	}
}
