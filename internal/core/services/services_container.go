package services

import (
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	container.Consolidation = NewConsolidationService(repos.LedgerRepo, repos.VoucherRepo)
	container.Vendor = NewVendorService(repos.LedgerRepo, repos.VendorRepo)
	container.Asset = NewAssetService(repos.LedgerRepo, repos.AssetRepo, repos.VendorRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.VoucherRepo, cfg.InitialCapital)
	container.Reconciliation = NewReconciliationService(repos.ReportingRepo, cfg.InitialCapital)
	container.Period = NewPeriodService(repos.PeriodRepo)

	return container
}
