package pdf

import (
	"fmt"
	"strconv"

	"github.com/flexprice/gstinvoice/internal/calc"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// DefaultMinItemRows keeps the items grid the same size on short invoices.
const DefaultMinItemRows = 10

// Layout draws one invoice page. Each block starts at the cursor it is given
// and returns the cursor at its bottom edge; Render chains them top to bottom.
type Layout struct {
	c           Canvas
	minItemRows int
	width       float64
	height      float64
}

// NewLayout binds a layout to a canvas.
func NewLayout(c Canvas, minItemRows int) *Layout {
	w, h := c.PageSize()
	return &Layout{c: c, minItemRows: minItemRows, width: w, height: h}
}

func (l *Layout) left() float64         { return PageMargin }
func (l *Layout) right() float64        { return l.width - PageMargin }
func (l *Layout) contentWidth() float64 { return l.width - 2*PageMargin }

// Render draws the whole document and returns the final cursor.
func (l *Layout) Render(doc Document) Cursor {
	cur := At(PageMargin)
	cur = l.Header(cur).Gap()
	cur = l.Parties(cur, doc.Invoice).Gap()
	cur = l.Meta(cur, doc.Invoice).Gap()
	cur = l.Items(cur, doc.Invoice.Items).Gap()
	if doc.ShowSummary {
		cur = l.TaxSummary(cur, doc).Gap()
	}
	cur = l.Totals(cur, doc.Totals).Gap()
	cur = l.AmountInWords(cur, doc).Gap()
	cur = l.Signature(cur).Gap()
	return l.Footer(cur)
}

// Header is the full-width accent bar with the document title.
func (l *Layout) Header(at Cursor) Cursor {
	l.c.SetFillColor(ColorAccent)
	l.c.Rect(l.left(), at.Y, l.contentWidth(), HeaderHeight, DrawFill)
	l.c.SetFont(FontBold, 18)
	l.c.SetTextColor(ColorWhite)
	textCenter(l.c, l.width/2, at.Y+HeaderHeight/2+3.2, "TAX INVOICE")
	return at.Advance(HeaderHeight)
}

// Parties draws the business and customer side by side. Both boxes take the
// height of the taller one.
func (l *Layout) Parties(at Cursor, inv invoice.Invoice) Cursor {
	const gutter = 6.0
	boxW := (l.contentWidth() - gutter) / 2

	l.c.SetFont(FontNormal, 10)
	from := l.partyLines(inv.Business, boxW-2*BoxPadding)
	to := l.partyLines(inv.Customer, boxW-2*BoxPadding)
	lines := max(len(from), len(to)) + 1
	boxH := float64(lines)*LineHeight + 2*BoxPadding

	l.party(l.left(), at.Y, boxW, boxH, "Bill From:", from)
	l.party(l.left()+boxW+gutter, at.Y, boxW, boxH, "Bill To:", to)
	return at.Advance(boxH)
}

func (l *Layout) partyLines(p invoice.Party, width float64) []string {
	lines := []string{p.Name}
	if p.Address != "" {
		lines = append(lines, wrap(l.c, p.Address, width)...)
	}
	if p.GSTIN != "" {
		lines = append(lines, "GSTIN: "+p.GSTIN)
	}
	return lines
}

func (l *Layout) party(x, y, w, h float64, label string, lines []string) {
	l.c.SetFillColor(ColorLightGray)
	l.c.SetDrawColor(ColorGrid)
	l.c.SetLineWidth(0.2)
	l.c.RoundedRect(x, y, w, h, BoxRadius, DrawFillStroke)

	baseline := y + BoxPadding + LineHeight - 1.5
	l.c.SetTextColor(ColorAccent)
	l.c.SetFont(FontBold, 11)
	l.c.Text(x+BoxPadding, baseline, label)

	l.c.SetTextColor(ColorText)
	for i, line := range lines {
		baseline += LineHeight
		if i == 0 {
			l.c.SetFont(FontBold, 10)
		} else {
			l.c.SetFont(FontNormal, 10)
		}
		l.c.Text(x+BoxPadding, baseline, line)
	}
}

// Meta is the shaded bar with the invoice number and date.
func (l *Layout) Meta(at Cursor, inv invoice.Invoice) Cursor {
	l.c.SetFillColor(ColorLightGray)
	l.c.Rect(l.left(), at.Y, l.contentWidth(), MetaBarHeight, DrawFill)

	baseline := at.Y + MetaBarHeight/2 + 1.5
	l.labelValue(l.left()+BoxPadding, baseline, "Invoice Number: ", inv.InvoiceNumber)

	date := "Date: "
	l.c.SetFont(FontNormal, 10)
	value := inv.InvoiceDate.Format(DateLayout)
	valueW := l.c.StringWidth(value)
	l.c.SetFont(FontBold, 10)
	labelW := l.c.StringWidth(date)
	l.labelValue(l.right()-BoxPadding-labelW-valueW, baseline, date, value)
	return at.Advance(MetaBarHeight)
}

func (l *Layout) labelValue(x, y float64, label, value string) {
	l.c.SetTextColor(ColorText)
	l.c.SetFont(FontBold, 10)
	l.c.Text(x, y, label)
	x += l.c.StringWidth(label)
	l.c.SetFont(FontNormal, 10)
	l.c.Text(x, y, value)
}

// ItemColumns are the columns of the line-item grid.
func ItemColumns() []Column {
	return []Column{
		{Header: "Sr. No", Width: 14, Align: AlignCenter},
		{Header: "Description", Width: 62, Align: AlignLeft, Wrap: true},
		{Header: "Qty", Width: 16, Align: AlignCenter},
		{Header: "Taxable", Width: 24, Align: AlignCenter},
		{Header: "GST %", Width: 16, Align: AlignCenter},
		{Header: "CGST / SGST", Width: 28, Align: AlignCenter},
		{Header: "Total", Width: 20, Align: AlignCenter},
	}
}

// ItemRows formats one row per line item.
func ItemRows(items []invoice.LineItem) []Row {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		half := calc.LineTax(item).Div(decimal.NewFromInt(2))
		rows = append(rows, Row{Cells: []string{
			strconv.Itoa(i + 1),
			item.Description,
			strconv.FormatInt(item.Quantity, 10),
			money(calc.LineTaxable(item)),
			percent(item.TaxRate),
			fmt.Sprintf("%s / %s", money(half), money(half)),
			money(calc.LineTotal(item)),
		}})
	}
	return rows
}

// Items draws the line-item grid, padded to the minimum row count.
func (l *Layout) Items(at Cursor, items []invoice.LineItem) Cursor {
	t := Table{
		X:       l.left(),
		Columns: ScaleColumns(ItemColumns(), l.contentWidth()),
		Rows:    ItemRows(items),
		MinRows: l.minItemRows,
		Style:   DefaultTableStyle(),
	}
	return t.Render(l.c, at)
}

// SummaryColumns are the columns of the per-bracket tax table.
func SummaryColumns() []Column {
	return []Column{
		{Header: "GST %", Width: 1, Align: AlignCenter},
		{Header: "Taxable", Width: 1, Align: AlignCenter},
		{Header: "CGST", Width: 1, Align: AlignCenter},
		{Header: "SGST", Width: 1, Align: AlignCenter},
		{Header: "Total", Width: 1, Align: AlignCenter},
	}
}

// SummaryRows formats the bracket rows followed by the bold TOTAL row.
func SummaryRows(doc Document) []Row {
	rows := make([]Row, 0, len(doc.Summary.Rows)+1)
	for _, r := range doc.Summary.Rows {
		rows = append(rows, Row{Cells: []string{
			percent(r.Rate), money(r.Taxable), money(r.CGST), money(r.SGST), money(r.Total),
		}})
	}
	t := doc.Summary.Total
	rows = append(rows, Row{
		Cells: []string{"TOTAL", money(t.Taxable), money(t.CGST), money(t.SGST), money(t.Total)},
		Bold:  true,
	})
	return rows
}

// TaxSummary draws the bracket table at reduced width.
func (l *Layout) TaxSummary(at Cursor, doc Document) Cursor {
	t := Table{
		X:       l.left(),
		Columns: ScaleColumns(SummaryColumns(), min(SummaryWidth, l.contentWidth())),
		Rows:    SummaryRows(doc),
		Style:   DefaultTableStyle(),
	}
	return t.Render(l.c, at)
}

// TotalsBoxHeight is the fixed height of the totals and tax-breakdown boxes.
const TotalsBoxHeight = BoxLineHeight*4 + BoxPadding

// Totals draws the tax breakdown on the left and the totals box on the right.
func (l *Layout) Totals(at Cursor, t calc.Totals) Cursor {
	half := money(t.HalfTax())
	l.box(l.left(), at.Y, TaxBoxWidth, [4][2]string{
		{"Tax Breakdown", ""},
		{"CGST:", half},
		{"SGST:", half},
		{"IGST:", money(decimal.Zero)},
	}, 0)

	l.box(l.right()-TotalsBoxWidth, at.Y, TotalsBoxWidth, [4][2]string{
		{"Subtotal:", money(t.Subtotal)},
		{"GST Amount:", money(t.TaxAmount)},
		{"Round Off:", t.SignedRoundOff()},
		{"Total Amount:", money(t.GrandTotal)},
	}, 3)
	return at.Advance(TotalsBoxHeight)
}

// box draws four label/value lines in a rounded box; labels are bold and the
// value on line bold is bold too.
func (l *Layout) box(x, y, w float64, lines [4][2]string, bold int) {
	l.c.SetFillColor(ColorLightGray)
	l.c.SetDrawColor(ColorGrid)
	l.c.SetLineWidth(0.2)
	l.c.RoundedRect(x, y, w, TotalsBoxHeight, BoxRadius, DrawFillStroke)

	l.c.SetTextColor(ColorText)
	for i, line := range lines {
		baseline := y + BoxPadding/2 + float64(i+1)*BoxLineHeight - 1.5
		l.c.SetFont(FontBold, 10)
		l.c.Text(x+BoxPadding, baseline, line[0])
		if line[1] == "" {
			continue
		}
		if i != bold {
			l.c.SetFont(FontNormal, 10)
		}
		textRight(l.c, x+w-BoxPadding, baseline, line[1])
	}
}

// AmountInWords draws the labelled grand total in words, wrapped to the
// content width.
func (l *Layout) AmountInWords(at Cursor, doc Document) Cursor {
	const label = "Amount in Words: "
	l.c.SetTextColor(ColorText)
	l.c.SetFont(FontBold, 10)
	labelW := l.c.StringWidth(label)
	l.c.Text(l.left(), at.Y+LineHeight-1.5, label)

	l.c.SetFont(FontNormal, 10)
	lines := wrap(l.c, doc.Words.String(), l.contentWidth()-labelW)
	for i, line := range lines {
		l.c.Text(l.left()+labelW, at.Y+float64(i+1)*LineHeight-1.5, line)
	}
	return at.Advance(float64(max(len(lines), 1)) * LineHeight)
}

// Signature draws the static signatory line on the right.
func (l *Layout) Signature(at Cursor) Cursor {
	const width = 60.0
	lineY := at.Y + 12
	l.c.SetDrawColor(ColorText)
	l.c.SetLineWidth(0.3)
	l.c.Line(l.right()-width, lineY, l.right(), lineY)
	l.c.SetTextColor(ColorText)
	l.c.SetFont(FontNormal, 9)
	textCenter(l.c, l.right()-width/2, lineY+5, "Authorised Signatory")
	return at.Advance(18)
}

// Footer is anchored to the bottom of the page unless the content above
// already reaches past that point.
func (l *Layout) Footer(at Cursor) Cursor {
	y := max(at.Y, l.height-FooterHeight)
	l.c.SetDrawColor(ColorAccent)
	l.c.SetLineWidth(0.5)
	l.c.Line(l.left(), y, l.right(), y)

	l.c.SetFont(FontItalic, 11)
	l.c.SetTextColor(ColorAccent)
	textCenter(l.c, l.width/2, y+9, "Thank you for your business!")

	l.c.SetFont(FontItalic, 8)
	l.c.SetTextColor(ColorText)
	textCenter(l.c, l.width/2, y+15, "This is a computer generated invoice.")
	return At(y + 15)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(rate decimal.Decimal) string {
	return rate.String() + "%"
}
