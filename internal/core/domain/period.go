package domain

import "time"

// CollectionPeriod marks one business date whose daily collection has been
// finalized. Entries dated inside a finalized period are rejected; corrections
// must be posted as adjustment entries dated in an open period.
type CollectionPeriod struct {
	PeriodDate  time.Time `json:"periodDate"`
	FinalizedAt time.Time `json:"finalizedAt"`
	FinalizedBy string    `json:"finalizedBy"`
}
