package dto

import (
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordEntryRequest is the inbound payload from the producing modules
// (patient billing, pharmacy sales, optics sales, operation bookings).
type RecordEntryRequest struct {
	AccountKind   string          `json:"accountKind" binding:"required"`
	Direction     string          `json:"direction" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Category      string          `json:"category" binding:"required"`
	Narration     string          `json:"narration"`
	TxnDate       time.Time       `json:"txnDate" binding:"required"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	// Decrease marks a downward ADJUSTMENT; ignored for other directions.
	Decrease bool `json:"decrease"`
}

// TransferRequest moves funds between two business lines as two
// causally-ordered entries in one atomic unit.
type TransferRequest struct {
	FromKind  string          `json:"fromKind" binding:"required"`
	ToKind    string          `json:"toKind" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Category  string          `json:"category" binding:"required"`
	Narration string          `json:"narration"`
	TxnDate   time.Time       `json:"txnDate" binding:"required"`
}

// EntryResponse is the outbound shape of a ledger entry.
type EntryResponse struct {
	EntryID        string          `json:"entryID"`
	TxnNumber      string          `json:"txnNumber"`
	AccountID      string          `json:"accountID"`
	Direction      string          `json:"direction"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category"`
	Narration      string          `json:"narration"`
	TxnDate        time.Time       `json:"txnDate"`
	ReferenceType  string          `json:"referenceType,omitempty"`
	ReferenceID    string          `json:"referenceID,omitempty"`
	VoucherNumber  *string         `json:"voucherNumber,omitempty"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ListEntriesParams carries pagination inputs for entry listings.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is one page of entries plus the cursor for the next.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain entry to its outbound shape.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		TxnNumber:      e.TxnNumber,
		AccountID:      e.AccountID,
		Direction:      string(e.Direction),
		Amount:         e.Amount,
		Category:       e.Category,
		Narration:      e.Narration,
		TxnDate:        e.TxnDate,
		ReferenceType:  e.Reference.Type,
		ReferenceID:    e.Reference.ID,
		VoucherNumber:  e.VoucherNumber,
		RunningBalance: e.RunningBalance,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
