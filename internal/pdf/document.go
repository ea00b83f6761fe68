package pdf

import (
	"github.com/flexprice/gstinvoice/internal/calc"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	"github.com/flexprice/gstinvoice/internal/taxsummary"
	"github.com/flexprice/gstinvoice/internal/words"
)

// DateLayout is how the invoice date is printed.
const DateLayout = "02/01/2006"

// Document is everything the layout draws, derived once from an invoice.
type Document struct {
	Invoice     invoice.Invoice
	Totals      calc.Totals
	Summary     taxsummary.Summary
	ShowSummary bool
	Words       words.AmountWords
}

// NewDocument recomputes all amounts from the line items. The amount in words
// is for the rounded grand total, so it always matches the printed figure.
func NewDocument(inv invoice.Invoice, agg *taxsummary.Aggregator) Document {
	totals := calc.Compute(inv.Items)
	doc := Document{
		Invoice:     inv,
		Totals:      totals,
		ShowSummary: agg.Enabled(),
		Words:       words.Convert(totals.GrandTotal),
	}
	if doc.ShowSummary {
		doc.Summary = agg.Aggregate(inv.Items)
	}
	return doc
}
