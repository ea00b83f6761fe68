package pdf

import (
	"io"
	"unicode/utf8"
)

type op struct {
	Name   string
	X, Y   float64
	W, H   float64
	Text   string
	Style  FontStyle
	Size   float64
	Align  Align
	Fill   bool
	Border bool
}

// recorder is a Canvas that remembers every draw call. Text width is a fixed
// fraction of the font size per rune.
type recorder struct {
	ops    []op
	style  FontStyle
	size   float64
	outErr error
}

func newRecorder() *recorder {
	return &recorder{size: 10}
}

func (r *recorder) PageSize() (float64, float64) { return 210, 297 }

func (r *recorder) SetFont(style FontStyle, size float64) {
	r.style, r.size = style, size
}

func (r *recorder) SetTextColor(Color)   {}
func (r *recorder) SetDrawColor(Color)   {}
func (r *recorder) SetFillColor(Color)   {}
func (r *recorder) SetLineWidth(float64) {}

func (r *recorder) Text(x, y float64, text string) {
	r.ops = append(r.ops, op{Name: "text", X: x, Y: y, Text: text, Style: r.style, Size: r.size})
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, op{Name: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *recorder) Rect(x, y, w, h float64, style DrawStyle) {
	r.ops = append(r.ops, op{Name: "rect", X: x, Y: y, W: w, H: h})
}

func (r *recorder) RoundedRect(x, y, w, h, _ float64, style DrawStyle) {
	r.ops = append(r.ops, op{Name: "roundrect", X: x, Y: y, W: w, H: h})
}

func (r *recorder) Cell(x, y, w, h float64, text string, align Align, fill, border bool) {
	r.ops = append(r.ops, op{
		Name: "cell", X: x, Y: y, W: w, H: h, Text: text,
		Style: r.style, Size: r.size, Align: align, Fill: fill, Border: border,
	})
}

func (r *recorder) StringWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * r.size * 0.18
}

func (r *recorder) Output(w io.Writer) error {
	if r.outErr != nil {
		return r.outErr
	}
	_, err := io.WriteString(w, "%PDF-recorded")
	return err
}

func (r *recorder) named(name string) []op {
	var out []op
	for _, o := range r.ops {
		if o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

// texts returns every string drawn, by Text or inside a Cell.
func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if (o.Name == "text" || o.Name == "cell") && o.Text != "" {
			out = append(out, o.Text)
		}
	}
	return out
}
