// Package words spells out rupee amounts using the Indian numbering system
// (crore, lakh, thousand).
package words

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount (10^15, "Ten Crore Crore") that is spelled out.
const MaxAmount = 1e15

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

var (
	ones  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// NumberToWords converts a non-negative integer to words, e.g. 1234567 ->
// "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven".
// Negative input is treated as zero.
func NumberToWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}

	var parts []string

	if c := n / crore; c > 0 {
		// Anything above 999 crore keeps counting in crores.
		if c >= thousand {
			parts = append(parts, NumberToWords(c))
		} else {
			parts = append(parts, belowThousand(c)...)
		}
		parts = append(parts, "Crore")
		n %= crore
	}
	if l := n / lakh; l > 0 {
		parts = append(parts, belowThousand(l)...)
		parts = append(parts, "Lakh")
		n %= lakh
	}
	if t := n / thousand; t > 0 {
		parts = append(parts, belowThousand(t)...)
		parts = append(parts, "Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, belowThousand(n)...)
	}

	return strings.Join(parts, " ")
}

// belowThousand spells 1..999. An "and" joins a hundreds segment to a non-zero remainder.
func belowThousand(n int64) []string {
	var parts []string

	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
		if n > 0 {
			parts = append(parts, "and")
		}
	}

	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	case n > 0:
		parts = append(parts, ones[n])
	}

	return parts
}

// AmountInWords spells a rupee amount with an optional paise part and the
// trailing "Only": AmountInWords(236, 50) -> "Two Hundred and Thirty Six and Fifty Paise Only".
func AmountInWords(rupees, paise int64) string {
	var b strings.Builder
	b.WriteString(NumberToWords(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(NumberToWords(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

// InRange reports whether amount is finite and between 0 and MaxAmount.
func InRange(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0 && amount <= MaxAmount
}

// Split rounds an amount to two decimals and returns its rupee and paise
// parts. Amounts outside InRange give 0, 0.
func Split(amount float64) (rupees, paise int64) {
	if !InRange(amount) {
		return 0, 0
	}
	d := decimal.NewFromFloat(amount).Round(2)
	rupees = d.IntPart()
	paise = d.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()
	return rupees, paise
}

// FromAmount spells a fractional amount, paise included.
func FromAmount(amount float64) string {
	return AmountInWords(Split(amount))
}
