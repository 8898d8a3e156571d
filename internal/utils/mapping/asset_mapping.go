package mapping

import (
	"github.com/sevacare/hospital_finance_app/internal/core/domain"
	"github.com/sevacare/hospital_finance_app/internal/models"
)

// ToModelFixedAsset converts a domain asset for DB storage.
func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:      d.AssetID,
		AssetNumber:  d.AssetNumber,
		Name:         d.Name,
		TotalCost:    d.TotalCost,
		PaidAmount:   d.PaidAmount,
		DueAmount:    d.DueAmount,
		PurchaseDate: d.PurchaseDate,
		VendorID:     d.VendorID,
		FundingKind:  models.AccountKind(d.FundingKind),
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedAsset converts a DB asset row to the domain shape.
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:      m.AssetID,
		AssetNumber:  m.AssetNumber,
		Name:         m.Name,
		TotalCost:    m.TotalCost,
		PaidAmount:   m.PaidAmount,
		DueAmount:    m.DueAmount,
		PurchaseDate: m.PurchaseDate,
		VendorID:     m.VendorID,
		FundingKind:  domain.AccountKind(m.FundingKind),
		Status:       domain.AssetStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
