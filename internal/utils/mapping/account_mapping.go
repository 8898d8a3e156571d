package mapping

import (
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/models"
)

// ToModelAccount converts a domain account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Kind:           models.AccountKind(d.Kind),
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB account row to the domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Kind:           domain.AccountKind(m.Kind),
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
