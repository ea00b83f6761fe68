package pdf

import "strings"

// FontStyle is one of the three variants of the single fixed font family.
type FontStyle string

const (
	FontNormal FontStyle = ""
	FontBold   FontStyle = "B"
	FontItalic FontStyle = "I"
)

// Align is the horizontal alignment of text inside a cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// DrawStyle selects whether shapes are stroked, filled or both.
type DrawStyle string

const (
	DrawStroke     DrawStyle = "D"
	DrawFill       DrawStyle = "F"
	DrawFillStroke DrawStyle = "FD"
)

// Color is an RGB triple, 0-255 per channel.
type Color struct {
	R, G, B int
}

// Canvas is the drawing surface the layout writes to. Coordinates are in
// millimetres from the top-left corner of the page; Text y is the baseline.
// Implementations keep their own current font and colors.
type Canvas interface {
	PageSize() (width, height float64)

	SetFont(style FontStyle, size float64)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)

	Text(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style DrawStyle)
	RoundedRect(x, y, w, h, r float64, style DrawStyle)
	// Cell draws text vertically centred in the box at (x, y, w, h),
	// optionally filled with the fill color and bordered with the draw color.
	Cell(x, y, w, h float64, text string, align Align, fill, border bool)

	StringWidth(text string) float64
}

// Cursor is the vertical position where the next layout block starts.
// Blocks take a cursor and return the cursor at their bottom edge.
type Cursor struct {
	Y float64
}

// At returns a cursor at y.
func At(y float64) Cursor {
	return Cursor{Y: y}
}

// Advance moves the cursor down by dy.
func (c Cursor) Advance(dy float64) Cursor {
	return Cursor{Y: c.Y + dy}
}

// Gap moves the cursor down by the standard spacing between blocks.
func (c Cursor) Gap() Cursor {
	return c.Advance(BlockGap)
}

// textRight draws text so that it ends at x.
func textRight(c Canvas, x, y float64, text string) {
	c.Text(x-c.StringWidth(text), y, text)
}

// textCenter draws text centred on x.
func textCenter(c Canvas, x, y float64, text string) {
	c.Text(x-c.StringWidth(text)/2, y, text)
}

// wrap breaks text at spaces into lines no wider than width in the current
// font. A single word wider than width gets a line of its own.
func wrap(c Canvas, text string, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && c.StringWidth(candidate) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fit shortens text with an ellipsis until it is no wider than width.
func fit(c Canvas, text string, width float64) string {
	if width <= 0 || c.StringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "..."
		if c.StringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
