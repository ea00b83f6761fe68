// Package calc holds the invoice arithmetic: per-line amounts, subtotal, tax,
// and the rounding of the grand total. Everything is exact decimal math and
// total over non-negative input.
package calc

import (
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineTaxable is quantity * rate.
func LineTaxable(item invoice.LineItem) decimal.Decimal {
	return decimal.NewFromInt(item.Quantity).Mul(item.Rate)
}

// LineTax is quantity * rate * tax_rate / 100.
func LineTax(item invoice.LineItem) decimal.Decimal {
	return LineTaxable(item).Mul(item.TaxRate).Div(hundred)
}

// LineTotal is the taxable amount plus its tax.
func LineTotal(item invoice.LineItem) decimal.Decimal {
	return LineTaxable(item).Add(LineTax(item))
}

// Subtotal sums quantity * rate over items. An empty list yields zero.
func Subtotal(items []invoice.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTaxable(item))
	}
	return sum
}

// TaxAmount sums the per-line tax over items.
func TaxAmount(items []invoice.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTax(item))
	}
	return sum
}

// Total is Subtotal + TaxAmount, unrounded.
func Total(items []invoice.LineItem) decimal.Decimal {
	return Subtotal(items).Add(TaxAmount(items))
}

// Rounding reconciles the unrounded total with the amount actually billed.
// GrandTotal - RoundOff always equals the unrounded total.
type Rounding struct {
	GrandTotal decimal.Decimal
	RoundOff   decimal.Decimal
}

// RoundTotal rounds total to the nearest whole unit, halves away from zero.
func RoundTotal(total decimal.Decimal) Rounding {
	grand := total.Round(0)
	return Rounding{
		GrandTotal: grand,
		RoundOff:   grand.Sub(total),
	}
}

// SignedRoundOff formats the round-off to two places with an explicit sign.
func (r Rounding) SignedRoundOff() string {
	return Signed(r.RoundOff)
}

// Signed formats d to two places, always prefixed with "+" or "-".
func Signed(d decimal.Decimal) string {
	rounded := d.Round(2)
	if rounded.IsNegative() {
		return "-" + rounded.Abs().StringFixed(2)
	}
	return "+" + rounded.StringFixed(2)
}

// Totals bundles every derived amount the document shows.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Rounding
}

// HalfTax is one of the two equal split components of the tax amount.
func (t Totals) HalfTax() decimal.Decimal {
	return t.TaxAmount.Div(decimal.NewFromInt(2))
}

// Compute derives all totals from the items. Cached values on the invoice
// are never consulted.
func Compute(items []invoice.LineItem) Totals {
	subtotal := Subtotal(items)
	tax := TaxAmount(items)
	total := subtotal.Add(tax)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     total,
		Rounding:  RoundTotal(total),
	}
}

// Drift lists the cached invoice totals that disagree with the recomputed
// ones at two decimal places. Zero cached values are treated as "not cached".
func Drift(inv invoice.Invoice, t Totals) []string {
	var fields []string
	check := func(name string, cached, computed decimal.Decimal) {
		if cached.IsZero() {
			return
		}
		if !cached.Round(2).Equal(computed.Round(2)) {
			fields = append(fields, name)
		}
	}
	check("subtotal", inv.Subtotal, t.Subtotal)
	check("gst_amount", inv.TaxAmount, t.TaxAmount)
	check("total_amount", inv.TotalAmount, t.Total)
	return fields
}
