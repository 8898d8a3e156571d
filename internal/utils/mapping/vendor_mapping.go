package mapping

import (
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/models"
)

// ToModelVendor converts a domain vendor for DB storage.
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:         d.VendorID,
		VendorNumber:     d.VendorNumber,
		AccountID:        d.AccountID,
		Name:             d.Name,
		ContactPhone:     d.ContactPhone,
		OpeningBalance:   d.OpeningBalance,
		BalanceType:      string(d.BalanceType),
		CreditLimit:      d.CreditLimit,
		PaymentTermsDays: d.PaymentTermsDays,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a DB vendor row to the domain shape.
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:         m.VendorID,
		VendorNumber:     m.VendorNumber,
		AccountID:        m.AccountID,
		Name:             m.Name,
		ContactPhone:     m.ContactPhone,
		OpeningBalance:   m.OpeningBalance,
		BalanceType:      domain.VendorBalanceType(m.BalanceType),
		CreditLimit:      m.CreditLimit,
		PaymentTermsDays: m.PaymentTermsDays,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
