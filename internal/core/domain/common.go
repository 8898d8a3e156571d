package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// ActorID values are opaque identifiers supplied by the calling modules;
// the engine never validates them.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Reference is an opaque pointer to the business object that originated a
// ledger entry (a patient bill, a medicine sale, a vendor invoice, ...).
// The engine stores and returns it; integrity of the pointed-to object is
// the producing module's responsibility.
type Reference struct {
	Type string `json:"referenceType"`
	ID   string `json:"referenceID"`
}

// IsZero reports whether no reference was supplied.
func (r Reference) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// Well-known reference types produced by the engine itself. External modules
// may use any other value.
const (
	RefTypeVendor      = "VENDOR"
	RefTypeFixedAsset  = "FIXED_ASSET"
	RefTypeLedgerEntry = "LEDGER_ENTRY"
	RefTypeTransfer    = "FUND_TRANSFER"
)
