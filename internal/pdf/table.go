package pdf

import "github.com/samber/lo"

// Column describes one table column.
type Column struct {
	Header string
	Width  float64
	Align  Align
	// Wrap lets long text run onto extra lines, growing the row, instead of
	// being cut short with an ellipsis.
	Wrap bool
}

// Row is one body row. Bold rows are drawn in the bold face, e.g. TOTAL.
type Row struct {
	Cells []string
	Bold  bool
}

// Table is a bordered grid with a shaded header row and striped body rows.
type Table struct {
	X       float64
	Columns []Column
	Rows    []Row
	// MinRows pads the body with empty rows up to this count.
	MinRows int
	Style   TableStyle
}

// Width is the sum of the column widths.
func (t Table) Width() float64 {
	return lo.SumBy(t.Columns, func(c Column) float64 { return c.Width })
}

// Height is the rendered height including the header and padding rows.
// Wrapped cells are measured on c.
func (t Table) Height(c Canvas) float64 {
	h := t.Style.HeadHeight
	for _, row := range PadRows(t.Rows, t.MinRows, len(t.Columns)) {
		_, rh := t.rowLines(c, row)
		h += rh
	}
	return h
}

// rowLines sets the row's font and splits each cell into the lines it is
// drawn with. The height is one row per line of the tallest cell.
func (t Table) rowLines(c Canvas, row Row) ([][]string, float64) {
	style := FontNormal
	if row.Bold {
		style = FontBold
	}
	c.SetFont(style, t.Style.BodyFontSize)

	lines := make([][]string, len(t.Columns))
	tallest := 1
	for j, col := range t.Columns {
		text := ""
		if j < len(row.Cells) {
			text = row.Cells[j]
		}
		width := col.Width - 2*t.Style.CellPadding
		if col.Wrap {
			lines[j] = wrap(c, text, width)
		} else {
			lines[j] = []string{fit(c, text, width)}
		}
		tallest = max(tallest, len(lines[j]))
	}
	return lines, float64(tallest) * t.Style.RowHeight
}

// PadRows appends empty rows until there are at least minRows. Rows beyond
// minRows are kept as-is.
func PadRows(rows []Row, minRows, columns int) []Row {
	if len(rows) >= minRows {
		return rows
	}
	padded := make([]Row, 0, minRows)
	padded = append(padded, rows...)
	for len(padded) < minRows {
		padded = append(padded, Row{Cells: make([]string, columns)})
	}
	return padded
}

// ScaleColumns resizes columns proportionally so they span width.
func ScaleColumns(columns []Column, width float64) []Column {
	total := lo.SumBy(columns, func(c Column) float64 { return c.Width })
	if total <= 0 {
		return columns
	}
	factor := width / total
	return lo.Map(columns, func(c Column, _ int) Column {
		c.Width *= factor
		return c
	})
}

// Render draws the table with its top edge at the cursor and returns the
// cursor at its bottom edge.
func (t Table) Render(c Canvas, at Cursor) Cursor {
	s := t.Style
	c.SetLineWidth(s.LineWidth)
	c.SetDrawColor(s.Border)

	c.SetFont(FontBold, s.HeadFontSize)
	c.SetFillColor(s.HeadFill)
	c.SetTextColor(s.HeadText)
	x := t.X
	for _, col := range t.Columns {
		c.Cell(x, at.Y, col.Width, s.HeadHeight, fit(c, col.Header, col.Width-2*s.CellPadding), AlignCenter, true, true)
		x += col.Width
	}
	cur := at.Advance(s.HeadHeight)

	c.SetTextColor(s.BodyText)
	c.SetFillColor(s.StripeFill)
	for i, row := range PadRows(t.Rows, t.MinRows, len(t.Columns)) {
		lines, height := t.rowLines(c, row)

		striped := i%2 == 1
		x = t.X
		for j, col := range t.Columns {
			if len(lines[j]) <= 1 {
				c.Cell(x, cur.Y, col.Width, height, lo.FirstOr(lines[j], ""), col.Align, striped, true)
			} else {
				c.Cell(x, cur.Y, col.Width, height, "", col.Align, striped, true)
				for k, line := range lines[j] {
					c.Cell(x, cur.Y+float64(k)*s.RowHeight, col.Width, s.RowHeight, line, col.Align, false, false)
				}
			}
			x += col.Width
		}
		cur = cur.Advance(height)
	}
	return cur
}
