package pgsql

import (
	portsrepo "github.com/sevacare/hospital_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	vendorRepo := newPgxVendorRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		LedgerRepo:    ledgerRepo,
		VoucherRepo:   voucherRepo,
		VendorRepo:    vendorRepo,
		AssetRepo:     assetRepo,
		PeriodRepo:    periodRepo,
		ReportingRepo: reportingRepo,
	}
}
