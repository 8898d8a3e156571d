// Package numwords renders monetary amounts as English words for the voucher
// report grand totals, e.g. 1250.50 -> "One Thousand Two Hundred Fifty and
// Paise Fifty Only".
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// belowThousand renders 0..999.
func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}

// integerWords renders a non-negative integer using the Indian grouping
// (thousand, lakh, crore) that the hospital's printed vouchers use.
func integerWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	var parts []string
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, integerWords(crore), "Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, belowThousand(lakh), "Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowThousand(thousand), "Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

// AmountInWords renders a fixed-point amount as words. Negative amounts are
// prefixed with "Minus"; fractional paise beyond two places are truncated,
// matching the NUMERIC(14,2) storage.
func AmountInWords(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	amount = amount.Abs().Truncate(2)

	whole := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).IntPart()

	words := integerWords(whole)
	if paise > 0 {
		words += " and Paise " + belowThousand(paise)
	}
	words += " Only"
	if negative {
		words = "Minus " + words
	}
	return words
}
