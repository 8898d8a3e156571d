package domain

import (
	"fmt"
	"time"
)

// Sequence prefixes. TXN and VCH counters reset per calendar date; AST and
// VEN run forever. Numbers are never reused or renumbered, even when the
// originating entry is later reversed.
const (
	SeqTxn     = "TXN"
	SeqVoucher = "VCH"
	SeqAsset   = "AST"
	SeqVendor  = "VEN"
)

const seqDateLayout = "20060102"

// SequenceDateKey returns the namespace date component for date-scoped
// prefixes, or the empty string for global ones.
func SequenceDateKey(prefix string, date time.Time) string {
	switch prefix {
	case SeqTxn, SeqVoucher:
		return date.Format(seqDateLayout)
	}
	return ""
}

// FormatSequenceNumber renders a counter as the human-readable identifier,
// e.g. TXN-20240105-0007 or AST-0003.
func FormatSequenceNumber(prefix, dateKey string, counter int64) string {
	if dateKey == "" {
		return fmt.Sprintf("%s-%04d", prefix, counter)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, dateKey, counter)
}
