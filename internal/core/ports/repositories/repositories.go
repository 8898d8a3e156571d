package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	LedgerRepo    LedgerRepositoryWithTx
	VoucherRepo   VoucherRepository
	VendorRepo    VendorRepository
	AssetRepo     AssetRepository
	PeriodRepo    PeriodRepository
	ReportingRepo ReportingRepository
}
