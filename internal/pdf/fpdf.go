package pdf

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	// bezier control-point distance for a quarter circle of radius 1
	kappa = 0.5523
)

// Surface is a canvas that can be serialised into a PDF file.
type Surface interface {
	Canvas
	Output(w io.Writer) error
}

// SurfaceFactory opens a blank one-page surface. created is written as the
// document creation date so identical input produces identical bytes.
type SurfaceFactory func(created time.Time) Surface

type fpdfSurface struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewFpdfSurface returns an A4 portrait surface backed by gofpdf using the
// core Helvetica font. UTF-8 input is mapped onto the cp1252 code page.
func NewFpdfSurface(created time.Time) Surface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(1.5)
	pdf.SetTitle("Tax Invoice", true)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", 10)

	return &fpdfSurface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *fpdfSurface) PageSize() (float64, float64) {
	return s.pdf.GetPageSize()
}

func (s *fpdfSurface) SetFont(style FontStyle, size float64) {
	s.pdf.SetFont(fontFamily, string(style), size)
}

func (s *fpdfSurface) SetTextColor(c Color) { s.pdf.SetTextColor(c.R, c.G, c.B) }
func (s *fpdfSurface) SetDrawColor(c Color) { s.pdf.SetDrawColor(c.R, c.G, c.B) }
func (s *fpdfSurface) SetFillColor(c Color) { s.pdf.SetFillColor(c.R, c.G, c.B) }
func (s *fpdfSurface) SetLineWidth(w float64) {
	s.pdf.SetLineWidth(w)
}

func (s *fpdfSurface) Text(x, y float64, text string) {
	s.pdf.Text(x, y, s.translate(text))
}

func (s *fpdfSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *fpdfSurface) Rect(x, y, w, h float64, style DrawStyle) {
	s.pdf.Rect(x, y, w, h, string(style))
}

func (s *fpdfSurface) RoundedRect(x, y, w, h, r float64, style DrawStyle) {
	r = min(r, w/2, h/2)
	k := r * kappa
	p := s.pdf
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveBezierCubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveBezierCubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveBezierCubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveBezierCubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
	p.DrawPath(string(style))
}

func (s *fpdfSurface) Cell(x, y, w, h float64, text string, align Align, fill, border bool) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(w, h, s.translate(text), borderStr, 0, string(align)+"M", fill, 0, "")
}

func (s *fpdfSurface) StringWidth(text string) float64 {
	return s.pdf.GetStringWidth(s.translate(text))
}

func (s *fpdfSurface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
