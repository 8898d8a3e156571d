package services

import (
	"context"
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over the entry log.
type LedgerReaderSvc interface {
	// GetEntryByID retrieves one entry by its unique identifier.
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// GetEntryByTxnNumber retrieves one entry by its transaction number.
	GetEntryByTxnNumber(ctx context.Context, txnNumber string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a paginated page of an account's entries,
	// newest first, with a cursor token for the next page.
	ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// BalanceAsOf folds the entry log to the account balance at end of the
	// given business date. Never reads the cached balance.
	BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
}

// LedgerWriterSvc defines the posting operations.
type LedgerWriterSvc interface {
	// RecordEntry posts one entry to a business line account. Fund movements
	// (FUND_IN, FUND_OUT) also mirror a voucher into the Main Account inside
	// the same transaction.
	RecordEntry(ctx context.Context, req dto.RecordEntryRequest, actorID string) (*domain.LedgerEntry, error)

	// ReverseEntry posts the opposite entry of an existing one, linked back
	// via a LEDGER_ENTRY reference. The original is never modified. Entries
	// on vendor accounts are rejected; vendor corrections go through the
	// vendor adjustment operation.
	ReverseEntry(ctx context.Context, entryID string, narration string, actorID string) (*domain.LedgerEntry, error)

	// Transfer posts a FUND_OUT from one business line and a FUND_IN to
	// another atomically, each mirrored to the Main Account.
	Transfer(ctx context.Context, req dto.TransferRequest, actorID string) (*domain.LedgerEntry, *domain.LedgerEntry, error)
}

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByKind(ctx context.Context, kind domain.AccountKind) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// LedgerSvcFacade combines the ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	AccountReaderSvc
}
