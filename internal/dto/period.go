package dto

import "time"

// FinalizePeriodRequest locks a collection day against further postings.
type FinalizePeriodRequest struct {
	PeriodDate time.Time `json:"periodDate" binding:"required"`
}

// PeriodResponse is the outbound shape of a finalized collection day.
type PeriodResponse struct {
	PeriodDate  time.Time `json:"periodDate"`
	FinalizedAt time.Time `json:"finalizedAt"`
	FinalizedBy string    `json:"finalizedBy"`
}
