package pdf

// Fixed page metrics and palette of the single invoice template.
const (
	PageMargin = 12.0
	BlockGap   = 4.0

	HeaderHeight   = 12.0
	MetaBarHeight  = 9.0
	LineHeight     = 5.5
	BoxLineHeight  = 6.0
	BoxPadding     = 4.0
	BoxRadius      = 2.5
	SummaryWidth   = 120.0
	TotalsBoxWidth = 85.0
	TaxBoxWidth    = 70.0
	FooterHeight   = 28.0
)

var (
	ColorAccent    = Color{R: 41, G: 128, B: 185}
	ColorLightGray = Color{R: 245, G: 245, B: 245}
	ColorGrid      = Color{R: 220, G: 220, B: 220}
	ColorText      = Color{R: 50, G: 50, B: 50}
	ColorWhite     = Color{R: 255, G: 255, B: 255}
)

// TableStyle controls the look of a rendered grid.
type TableStyle struct {
	HeadFill     Color
	HeadText     Color
	StripeFill   Color
	BodyText     Color
	Border       Color
	LineWidth    float64
	HeadFontSize float64
	BodyFontSize float64
	HeadHeight   float64
	RowHeight    float64
	CellPadding  float64
}

// DefaultTableStyle is the striped, accent-headed grid used for both tables.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		HeadFill:     ColorAccent,
		HeadText:     ColorWhite,
		StripeFill:   ColorLightGray,
		BodyText:     ColorText,
		Border:       ColorGrid,
		LineWidth:    0.2,
		HeadFontSize: 10,
		BodyFontSize: 9,
		HeadHeight:   7,
		RowHeight:    6,
		CellPadding:  1.5,
	}
}
