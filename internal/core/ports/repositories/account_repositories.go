package repositories

import (
	"context"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
)

// AccountRepository provides read access to accounts outside of posting
// transactions. Account rows are created by the seed migration (business
// lines, Main) or inside vendor-creation transactions.
type AccountRepository interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByKind(ctx context.Context, kind domain.AccountKind) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
