// Package words spells out rupee amounts using the Indian numbering system
// (crore, lakh, thousand, hundred).
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
	hundred  = 100
)

// AmountWords keeps the rupee and paise wording apart so callers can compose
// them however they need. Paise is empty when the amount has no fractional part.
type AmountWords struct {
	Rupees string
	Paise  string
}

// HasPaise reports whether the amount had a non-zero fractional part.
func (w AmountWords) HasPaise() bool {
	return w.Paise != ""
}

// String composes the sentence printed on the invoice, e.g.
// "Rupees One Hundred and Paise Fifty Only".
func (w AmountWords) String() string {
	if !w.HasPaise() {
		return "Rupees " + w.Rupees + " Only"
	}
	return "Rupees " + w.Rupees + " and Paise " + w.Paise + " Only"
}

// Convert rounds amount to paise and words the two parts separately.
// The sign of amount is ignored. The rupee part has no upper bound.
func Convert(amount decimal.Decimal) AmountWords {
	rounded := amount.Abs().Round(2)
	rupees := rounded.Truncate(0)

	w := AmountWords{Rupees: "Zero"}
	if parts := wholeWords(rupees); len(parts) > 0 {
		w.Rupees = strings.Join(parts, " ")
	}
	if paise := rounded.Sub(rupees).Shift(2).IntPart(); paise > 0 {
		w.Paise = Integer(paise)
	}
	return w
}

// wholeWords peels crores off n with decimal arithmetic so amounts past the
// int64 range still read correctly.
func wholeWords(n decimal.Decimal) []string {
	c := decimal.NewFromInt(crore)
	if n.LessThan(c) {
		return decompose(n.IntPart())
	}
	q, r := n.QuoRem(c, 0)
	parts := append(wholeWords(q), "Crore")
	return append(parts, decompose(r.IntPart())...)
}

// ToWords is Convert(amount).String().
func ToWords(amount decimal.Decimal) string {
	return Convert(amount).String()
}

// Integer words a non-negative whole number, "Zero" for 0.
func Integer(n int64) string {
	if n <= 0 {
		return "Zero"
	}
	return strings.Join(decompose(n), " ")
}

// decompose splits n most-significant-first into crore, lakh, thousand,
// hundred and a 0-99 remainder. Only the crore count can exceed 99; it is
// decomposed again rather than read as two digits.
func decompose(n int64) []string {
	var parts []string

	if c := n / crore; c > 0 {
		if c > 99 {
			parts = append(parts, decompose(c)...)
		} else {
			parts = append(parts, twoDigits(c)...)
		}
		parts = append(parts, "Crore")
	}
	n %= crore

	if l := n / lakh; l > 0 {
		parts = append(parts, twoDigits(l)...)
		parts = append(parts, "Lakh")
	}
	n %= lakh

	if t := n / thousand; t > 0 {
		parts = append(parts, twoDigits(t)...)
		parts = append(parts, "Thousand")
	}
	n %= thousand

	if h := n / hundred; h > 0 {
		parts = append(parts, ones[h], "Hundred")
	}

	if rest := n % hundred; rest > 0 {
		parts = append(parts, twoDigits(rest)...)
	}

	return parts
}

func twoDigits(n int64) []string {
	if n < 20 {
		return []string{ones[n]}
	}
	out := []string{tens[n/10]}
	if n%10 != 0 {
		out = append(out, ones[n%10])
	}
	return out
}
