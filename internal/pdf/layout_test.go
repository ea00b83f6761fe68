package pdf

import (
	"testing"
	"time"

	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	"github.com/flexprice/gstinvoice/internal/taxsummary"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() invoice.Invoice {
	return invoice.Invoice{
		InvoiceNumber: "INV-20240115-0042",
		InvoiceDate:   invoice.NewDate(2024, time.January, 15),
		Business: invoice.Party{
			Name:    "Acme Traders",
			Address: "12 MG Road, Bengaluru",
			GSTIN:   "29ABCDE1234F1Z5",
		},
		Customer: invoice.Party{
			Name:    "Globex Retail",
			Address: "7 Park Street, Kolkata",
			GSTIN:   "19PQRSX6789K1Z2",
		},
		Items: []invoice.LineItem{
			{Description: "Widget", Quantity: 2, Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
			{Description: "Service", Quantity: 1, Rate: decimal.RequireFromString("50.50"), TaxRate: decimal.NewFromInt(5)},
		},
	}
}

func renderSample(t *testing.T, cfg taxsummary.Config) (*recorder, Cursor) {
	t.Helper()
	rec := newRecorder()
	doc := NewDocument(sampleInvoice(), taxsummary.NewAggregator(cfg))
	end := NewLayout(rec, DefaultMinItemRows).Render(doc)
	return rec, end
}

func TestNewDocumentRecomputesTotals(t *testing.T) {
	inv := sampleInvoice()
	inv.TotalAmount = decimal.NewFromInt(999)
	doc := NewDocument(inv, taxsummary.NewAggregator(taxsummary.Config{}))

	assert.Equal(t, "250.50", doc.Totals.Subtotal.StringFixed(2))
	assert.True(t, doc.Totals.TaxAmount.Equal(decimal.RequireFromString("38.525")))
	assert.Equal(t, "289", doc.Totals.GrandTotal.String())
	assert.Equal(t, "-0.03", doc.Totals.SignedRoundOff())
	assert.Equal(t, "Rupees Two Hundred Eighty Nine Only", doc.Words.String())
	assert.True(t, doc.ShowSummary)
	assert.Len(t, doc.Summary.Rows, 4)
}

func TestRenderDrawsEveryBlock(t *testing.T) {
	rec, _ := renderSample(t, taxsummary.Config{})
	texts := rec.texts()

	for _, want := range []string{
		"TAX INVOICE",
		"Bill From:", "Bill To:",
		"Acme Traders", "Globex Retail",
		"GSTIN: 29ABCDE1234F1Z5", "GSTIN: 19PQRSX6789K1Z2",
		"Invoice Number: ", "INV-20240115-0042",
		"Date: ", "15/01/2024",
		"Sr. No", "Description", "CGST / SGST",
		"Widget", "200.00", "18%", "18.00 / 18.00", "236.00",
		"Service", "50.50", "5%", "1.26 / 1.26", "53.03",
		"TOTAL", "250.50", "19.26", "289.02",
		"Tax Breakdown", "IGST:",
		"Subtotal:", "GST Amount:", "38.53", "Round Off:", "-0.03", "Total Amount:", "289.00",
		"Amount in Words: ", "Rupees Two Hundred Eighty Nine Only",
		"Authorised Signatory",
		"Thank you for your business!",
		"This is a computer generated invoice.",
	} {
		assert.Contains(t, texts, want)
	}
}

func TestRenderItemGridHasMinimumRows(t *testing.T) {
	rec, _ := renderSample(t, taxsummary.Config{Strategy: types.SummaryStrategyNone})

	// header plus ten body rows of seven columns
	assert.Len(t, rec.named("cell"), 7+DefaultMinItemRows*7)
}

func TestRenderWithoutSummaryTable(t *testing.T) {
	rec, end := renderSample(t, taxsummary.Config{Strategy: types.SummaryStrategyNone})

	assert.NotContains(t, rec.texts(), "TOTAL")
	assert.Contains(t, rec.texts(), "Total Amount:")
	assert.InDelta(t, 297-FooterHeight+15, end.Y, 1e-9)
}

func TestRenderAnchorsFooterToPageBottom(t *testing.T) {
	rec, end := renderSample(t, taxsummary.Config{})

	lines := rec.named("line")
	require.NotEmpty(t, lines)
	footer := lines[len(lines)-1]
	assert.InDelta(t, 297-FooterHeight, footer.Y, 1e-9)
	assert.InDelta(t, footer.Y+15, end.Y, 1e-9)
}

func TestBlocksThreadTheCursor(t *testing.T) {
	rec := newRecorder()
	l := NewLayout(rec, DefaultMinItemRows)

	assert.Equal(t, At(20+HeaderHeight), l.Header(At(20)))
	assert.Equal(t, At(40+MetaBarHeight), l.Meta(At(40), sampleInvoice()))
	assert.Equal(t, At(100+TotalsBoxHeight), l.Totals(At(100), NewDocument(sampleInvoice(), taxsummary.NewAggregator(taxsummary.Config{})).Totals))
	assert.Equal(t, At(10+18), l.Signature(At(10)))

	items := l.Items(At(50), sampleInvoice().Items)
	style := DefaultTableStyle()
	assert.InDelta(t, 50+style.HeadHeight+float64(DefaultMinItemRows)*style.RowHeight, items.Y, 1e-9)
}

func TestPartiesUseTallerBoxHeight(t *testing.T) {
	rec := newRecorder()
	l := NewLayout(rec, DefaultMinItemRows)
	inv := sampleInvoice()
	inv.Customer.Address = "Unit 4, Block B, Industrial Estate, Phase Two, Sector Eleven, Navi Mumbai"

	end := l.Parties(At(0), inv)

	boxes := rec.named("roundrect")
	require.Len(t, boxes, 2)
	assert.Equal(t, boxes[0].H, boxes[1].H)
	assert.InDelta(t, boxes[0].H, end.Y, 1e-9)
	assert.Greater(t, end.Y, 4*LineHeight+2*BoxPadding)
}

func TestFooterFollowsOverflowingContent(t *testing.T) {
	l := NewLayout(newRecorder(), DefaultMinItemRows)
	assert.Equal(t, At(290+15), l.Footer(At(290)))
}

func TestTotalsBoxIsBoldOnlyForGrandTotal(t *testing.T) {
	rec := newRecorder()
	l := NewLayout(rec, DefaultMinItemRows)
	l.Totals(At(0), NewDocument(sampleInvoice(), taxsummary.NewAggregator(taxsummary.Config{})).Totals)

	styles := map[string]FontStyle{}
	for _, o := range rec.named("text") {
		styles[o.Text] = o.Style
	}
	assert.Equal(t, FontNormal, styles["250.50"])
	assert.Equal(t, FontNormal, styles["-0.03"])
	assert.Equal(t, FontBold, styles["289.00"])
	assert.Equal(t, FontBold, styles["Total Amount:"])
}
