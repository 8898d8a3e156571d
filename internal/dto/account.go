package dto

import (
	"time"

	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse is the outbound shape of an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BalanceResponse reports an account balance as of a date.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Kind      string          `json:"kind"`
	AsOf      time.Time       `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain account to its outbound shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Kind:           string(a.Kind),
		OpeningBalance: a.OpeningBalance,
		Balance:        a.Balance,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.LastUpdatedAt,
	}
}
